// Package study is the application layer: it checks who is acting, runs
// the scheduler against stored cards and keeps decks, cards and the review
// log consistent.
package study

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
	"github.com/conorfennell/memora/internal/validation"
)

type Nower interface {
	Now() time.Time
}

type RealNower struct{}

func (r RealNower) Now() time.Time {
	return time.Now()
}

type Service struct {
	store    storage.Store
	engine   *srs.Engine
	selector srs.Selector
	validate *validation.Validator

	Nower Nower
	NewID func() string
}

// NewService returns a service over store scheduling with cfg.
func NewService(store storage.Store, cfg srs.Config) (*Service, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		engine:   srs.NewEngine(srs.NewPolicy(cfg)),
		selector: srs.NewSelector(cfg),
		validate: v,
		Nower:    RealNower{},
		NewID:    uuid.NewString,
	}, nil
}

// Policy returns the interval policy reviews are scheduled with.
func (s *Service) Policy() *srs.Policy {
	return s.engine.Policy()
}

func (s *Service) actor(ctx context.Context, op string) (*auth.AuthedUser, error) {
	user := auth.UserFromContext(ctx)
	if user == nil || user.ID == "" {
		return nil, unauthenticated(op)
	}
	return user, nil
}

// ownedDeck loads a deck, hiding decks of other users as not found.
func (s *Service) ownedDeck(ctx context.Context, op, userID, deckID string) (*domain.Deck, error) {
	deck, err := s.store.GetDeck(ctx, deckID)
	if err != nil {
		return nil, storeError(op, err, ErrDeckNotFound)
	}
	if deck.UserID != userID {
		return nil, newError(KindNotFound, op, ErrDeckNotFound)
	}
	return deck, nil
}

// ownedCard loads a card, hiding cards of other users as not found.
func (s *Service) ownedCard(ctx context.Context, op, userID, cardID string) (*domain.Card, error) {
	card, err := s.store.GetCard(ctx, cardID)
	if err != nil {
		return nil, storeError(op, err, ErrCardNotFound)
	}
	if card.UserID != userID {
		return nil, newError(KindNotFound, op, ErrCardNotFound)
	}
	return card, nil
}
