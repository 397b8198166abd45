// Package storage persists decks, cards, review events and card sources.
// Two backends implement Store: SQLite for local use and PostgreSQL for a
// shared remote database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/memora/internal/config"
	"github.com/conorfennell/memora/internal/domain"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage/mock_storage.go -package=mock_storage

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a card changed since it was read.
	ErrConflict = errors.New("version conflict")
	// ErrDuplicate is returned when a deck name or source path is taken.
	ErrDuplicate = errors.New("duplicate")
)

// ReviewUpdate is the scheduling state written for one submitted review.
// It only applies if the card is still at ExpectedVersion.
type ReviewUpdate struct {
	CardID          string
	DeckID          string
	ExpectedVersion int64

	Interval    float64
	Repetitions int
	NextReview  time.Time
	EaseFactor  float64
	Grade       domain.Grade
	ReviewedAt  time.Time
}

// CardStore stores cards. Creating or deleting cards keeps the owning
// deck's card count in step within the same transaction.
type CardStore interface {
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	// ListCards returns a deck's cards, newest first.
	ListCards(ctx context.Context, deckID string) ([]domain.Card, error)
	CreateCards(ctx context.Context, cards []domain.Card) error
	UpdateCardContent(ctx context.Context, id string, c domain.Content) error
	// ApplyReview writes the new scheduling state and the deck's
	// LastReviewed atomically. It returns ErrConflict if the card's version
	// is no longer ExpectedVersion.
	ApplyReview(ctx context.Context, u ReviewUpdate) error
	DeleteCard(ctx context.Context, id string) error
	FindCardByHash(ctx context.Context, deckID, hash string) (*domain.Card, error)
	ListCardsBySource(ctx context.Context, sourceID int64) ([]domain.Card, error)
}

// DeckStore stores decks. Names are unique per user, ignoring case.
type DeckStore interface {
	CreateDeck(ctx context.Context, deck *domain.Deck) error
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)
	FindDeckByName(ctx context.Context, userID, name string) (*domain.Deck, error)
	ListDecks(ctx context.Context, userID string) ([]domain.Deck, error)
	RenameDeck(ctx context.Context, id, name string) error
	// DeleteDeck removes the deck and all of its cards.
	DeleteDeck(ctx context.Context, id string) error
}

// ReviewLogStore is the append-only review history.
type ReviewLogStore interface {
	AppendReview(ctx context.Context, ev domain.ReviewEvent) error
	// ListReviews returns a card's review events, newest first.
	ListReviews(ctx context.Context, cardID string) ([]domain.ReviewEvent, error)
}

// SourceStore tracks the directories and repositories decks are synced from.
type SourceStore interface {
	InsertSource(ctx context.Context, src *domain.Source) error
	FindSourceByPath(ctx context.Context, userID, path string) (*domain.Source, error)
	ListSources(ctx context.Context, userID string) ([]domain.Source, error)
	DeleteSource(ctx context.Context, id int64) error
	UpdateSourceLastScanned(ctx context.Context, id int64, at time.Time) error
}

// Store is everything a backend provides.
type Store interface {
	CardStore
	DeckStore
	ReviewLogStore
	SourceStore
	Close() error
}

// Open connects to the backend named in cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLite.Path)
	case config.BackendPostgres:
		return OpenPostgres(ctx, cfg.Postgres.URL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
