package study

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/domain"
)

func (s *Service) checkDeckName(op, name string) (string, error) {
	name = strings.TrimSpace(name)
	tag := fmt.Sprintf("required,max=%d", domain.MaxDeckNameLength)
	if err := s.validate.Var("deck name", name, tag); err != nil {
		return "", invalid(op, fmt.Errorf("%w: %w", ErrInvalidDeckName, err))
	}
	return name, nil
}

// ListDecks returns the actor's decks, newest first.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	const op = "ListDecks"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	decks, err := s.store.ListDecks(ctx, user.ID)
	if err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	return decks, nil
}

func (s *Service) GetDeck(ctx context.Context, deckID string) (*domain.Deck, error) {
	const op = "GetDeck"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	return s.ownedDeck(ctx, op, user.ID, deckID)
}

// CreateDeck creates an empty deck. Names are trimmed and must be unique
// for the user, ignoring case.
func (s *Service) CreateDeck(ctx context.Context, name string) (*domain.Deck, error) {
	const op = "CreateDeck"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	name, err = s.checkDeckName(op, name)
	if err != nil {
		return nil, err
	}
	deck := &domain.Deck{
		ID:        s.NewID(),
		UserID:    user.ID,
		Name:      name,
		CreatedAt: s.Nower.Now(),
	}
	if err := s.store.CreateDeck(ctx, deck); err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	log.Ctx(ctx).Info().Str("deck", deck.ID).Str("name", deck.Name).Msg("deck-created")
	return deck, nil
}

// UniqueDeckName returns base if the actor has no deck by that name, and
// otherwise the first free "base (n)" for n = 1, 2, ...
func (s *Service) UniqueDeckName(ctx context.Context, base string) (string, error) {
	const op = "UniqueDeckName"
	user, err := s.actor(ctx, op)
	if err != nil {
		return "", err
	}
	base, err = s.checkDeckName(op, base)
	if err != nil {
		return "", err
	}
	decks, err := s.store.ListDecks(ctx, user.ID)
	if err != nil {
		return "", storeError(op, err, ErrDeckNotFound)
	}
	return uniqueName(base, decks), nil
}

func uniqueName(base string, decks []domain.Deck) string {
	taken := make(map[string]struct{}, len(decks))
	for _, d := range decks {
		taken[domain.DeckNameKey(d.Name)] = struct{}{}
	}
	name := base
	for n := 1; ; n++ {
		if _, ok := taken[domain.DeckNameKey(name)]; !ok {
			return name
		}
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateName(base, domain.MaxDeckNameLength-len(suffix)) + suffix
	}
}

// truncateName cuts name to at most limit runes.
func truncateName(name string, limit int) string {
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	return strings.TrimRightFunc(string(r[:limit]), unicode.IsSpace)
}

// RenameDeck renames one of the actor's decks.
func (s *Service) RenameDeck(ctx context.Context, deckID, name string) (*domain.Deck, error) {
	const op = "RenameDeck"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	name, err = s.checkDeckName(op, name)
	if err != nil {
		return nil, err
	}
	deck, err := s.ownedDeck(ctx, op, user.ID, deckID)
	if err != nil {
		return nil, err
	}
	if err := s.store.RenameDeck(ctx, deckID, name); err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	deck.Name = name
	return deck, nil
}

// DeleteDeck deletes one of the actor's decks and all of its cards. The
// review log is kept.
func (s *Service) DeleteDeck(ctx context.Context, deckID string) error {
	const op = "DeleteDeck"
	user, err := s.actor(ctx, op)
	if err != nil {
		return err
	}
	if _, err := s.ownedDeck(ctx, op, user.ID, deckID); err != nil {
		return err
	}
	if err := s.store.DeleteDeck(ctx, deckID); err != nil {
		return storeError(op, err, ErrDeckNotFound)
	}
	log.Ctx(ctx).Info().Str("deck", deckID).Msg("deck-deleted")
	return nil
}

// DeckTags returns every tag used in a deck, sorted, for autocompletion.
func (s *Service) DeckTags(ctx context.Context, deckID string) ([]string, error) {
	cards, err := s.deckCards(ctx, "DeckTags", deckID)
	if err != nil {
		return nil, err
	}
	tags := []string{}
	for _, c := range cards {
		tags = append(tags, c.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags), nil
}

// ImportDeck creates a deck holding cards. The deck is named name, or
// "name (n)" if the actor already has a deck by that name. Nothing is
// created if any card is invalid.
func (s *Service) ImportDeck(ctx context.Context, name string, cards []domain.Content) (*domain.Deck, error) {
	const op = "ImportDeck"
	if _, err := s.actor(ctx, op); err != nil {
		return nil, err
	}
	contents, err := s.checkImport(op, cards)
	if err != nil {
		return nil, err
	}

	unique, err := s.UniqueDeckName(ctx, name)
	if err != nil {
		return nil, err
	}
	deck, err := s.CreateDeck(ctx, unique)
	if err != nil {
		return nil, err
	}
	added, err := s.addCards(ctx, op, deck, contents)
	if err != nil {
		if derr := s.store.DeleteDeck(ctx, deck.ID); derr != nil {
			log.Ctx(ctx).Warn().Err(derr).Str("deck", deck.ID).Msg("empty-import-deck-not-removed")
		}
		return nil, err
	}
	deck.CardCount = len(added)
	log.Ctx(ctx).Info().Str("deck", deck.ID).Int("cards", len(added)).Msg("deck-imported")
	return deck, nil
}

// MergeIntoDeck adds cards to one of the actor's existing decks, the
// alternative to importing them as a new "name (n)" deck. Nothing is added
// if any card is invalid.
func (s *Service) MergeIntoDeck(ctx context.Context, deckID string, cards []domain.Content) (*domain.Deck, error) {
	const op = "MergeIntoDeck"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	contents, err := s.checkImport(op, cards)
	if err != nil {
		return nil, err
	}
	deck, err := s.ownedDeck(ctx, op, user.ID, deckID)
	if err != nil {
		return nil, err
	}
	added, err := s.addCards(ctx, op, deck, contents)
	if err != nil {
		return nil, err
	}
	deck, err = s.store.GetDeck(ctx, deck.ID)
	if err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	log.Ctx(ctx).Info().Str("deck", deck.ID).Int("cards", len(added)).Msg("deck-merged")
	return deck, nil
}

func (s *Service) checkImport(op string, cards []domain.Content) ([]domain.Content, error) {
	if len(cards) == 0 {
		return nil, invalidf(op, "no cards to import")
	}
	contents := make([]domain.Content, len(cards))
	for i, c := range cards {
		checked, err := s.checkContent(c)
		if err != nil {
			return nil, invalidf(op, "card %d: %w", i+1, err)
		}
		contents[i] = checked
	}
	return contents, nil
}
