package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/conorfennell/memora/internal/domain"
)

// checkContent trims and validates card content.
func (s *Service) checkContent(c domain.Content) (domain.Content, error) {
	c = domain.Content{
		Front: strings.TrimSpace(c.Front),
		Back:  strings.TrimSpace(c.Back),
		Tags:  domain.NormalizeTags(c.Tags),
	}
	if err := s.validate.Struct(c); err != nil {
		return domain.Content{}, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}
	return c, nil
}

func (s *Service) addCards(ctx context.Context, op string, deck *domain.Deck, contents []domain.Content) ([]domain.Card, error) {
	now := s.Nower.Now()
	ease := s.engine.Policy().Config().DefaultEaseFactor
	cards := make([]domain.Card, len(contents))
	for i, c := range contents {
		cards[i] = domain.NewCard(s.NewID(), deck.ID, deck.UserID, c, now)
		cards[i].EaseFactor = ease
	}
	if err := s.store.CreateCards(ctx, cards); err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	return cards, nil
}

// AddCard adds a new card, due immediately, to one of the actor's decks.
func (s *Service) AddCard(ctx context.Context, deckID string, c domain.Content) (*domain.Card, error) {
	const op = "AddCard"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	c, err = s.checkContent(c)
	if err != nil {
		return nil, invalid(op, err)
	}
	deck, err := s.ownedDeck(ctx, op, user.ID, deckID)
	if err != nil {
		return nil, err
	}
	cards, err := s.addCards(ctx, op, deck, []domain.Content{c})
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

func (s *Service) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	const op = "GetCard"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	return s.ownedCard(ctx, op, user.ID, cardID)
}

// ListCards returns the cards of one of the actor's decks, newest first.
func (s *Service) ListCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	return s.deckCards(ctx, "ListCards", deckID)
}

// UpdateCardContent replaces a card's front, back and tags. Its schedule
// is left as it was.
func (s *Service) UpdateCardContent(ctx context.Context, cardID string, c domain.Content) (*domain.Card, error) {
	const op = "UpdateCardContent"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	c, err = s.checkContent(c)
	if err != nil {
		return nil, invalid(op, err)
	}
	card, err := s.ownedCard(ctx, op, user.ID, cardID)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateCardContent(ctx, cardID, c); err != nil {
		return nil, storeError(op, err, ErrCardNotFound)
	}
	card.Front, card.Back, card.Tags = c.Front, c.Back, c.Tags
	return card, nil
}

// DeleteCard removes one of the actor's cards.
func (s *Service) DeleteCard(ctx context.Context, cardID string) error {
	const op = "DeleteCard"
	user, err := s.actor(ctx, op)
	if err != nil {
		return err
	}
	if _, err := s.ownedCard(ctx, op, user.ID, cardID); err != nil {
		return err
	}
	if err := s.store.DeleteCard(ctx, cardID); err != nil {
		return storeError(op, err, ErrCardNotFound)
	}
	return nil
}
