package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/gitsource"
	"github.com/conorfennell/memora/internal/storage"
	"github.com/conorfennell/memora/internal/study"
	"github.com/conorfennell/memora/internal/sync"
)

// userContext acts as the --user user and carries the global logger.
func (a *app) userContext(ctx context.Context) context.Context {
	ctx = log.Logger.With().Str("user", a.userID).Logger().WithContext(ctx)
	return auth.StoreUserInContext(ctx, a.userID)
}

func (a *app) openStore(ctx context.Context) (storage.Store, error) {
	store, err := storage.Open(ctx, a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", a.cfg.Storage.Backend, err)
	}
	return store, nil
}

// openService opens the store and a service over it. The caller closes the
// store.
func (a *app) openService(ctx context.Context) (*study.Service, storage.Store, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc, err := study.NewService(store, a.cfg.SRS)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return svc, store, nil
}

func (a *app) newSyncer(store storage.Store) (*sync.Syncer, error) {
	return sync.NewSyncer(store, gitsource.NewSyncer(), a.cfg.Sync.ReposDir)
}

// findDeck looks a deck up by id or by name, ignoring case.
func findDeck(ctx context.Context, svc *study.Service, nameOrID string) (*domain.Deck, error) {
	decks, err := svc.ListDecks(ctx)
	if err != nil {
		return nil, err
	}
	key := domain.DeckNameKey(nameOrID)
	for i := range decks {
		if decks[i].ID == nameOrID || domain.DeckNameKey(decks[i].Name) == key {
			return &decks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", study.ErrDeckNotFound, nameOrID)
}
