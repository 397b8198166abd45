package study

import (
	"context"

	"github.com/conorfennell/memora/internal/domain"
)

// deckCards lists the cards of a deck the actor owns, newest first.
func (s *Service) deckCards(ctx context.Context, op, deckID string) ([]domain.Card, error) {
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedDeck(ctx, op, user.ID, deckID); err != nil {
		return nil, err
	}
	cards, err := s.store.ListCards(ctx, deckID)
	if err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	return cards, nil
}

// DueCards returns the cards of a deck that are due now, including those
// inside the early-review window, in listing order.
func (s *Service) DueCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	cards, err := s.deckCards(ctx, "DueCards", deckID)
	if err != nil {
		return nil, err
	}
	return s.selector.Due(cards, s.Nower.Now()), nil
}

// DueCardCount is len(DueCards) without building the slice.
func (s *Service) DueCardCount(ctx context.Context, deckID string) (int, error) {
	cards, err := s.deckCards(ctx, "DueCardCount", deckID)
	if err != nil {
		return 0, err
	}
	return s.selector.CountDue(cards, s.Nower.Now()), nil
}

// OverLearnCards returns the cards of a deck that are not due yet, soonest
// first.
func (s *Service) OverLearnCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	cards, err := s.deckCards(ctx, "OverLearnCards", deckID)
	if err != nil {
		return nil, err
	}
	return s.selector.OverLearn(cards, s.Nower.Now()), nil
}
