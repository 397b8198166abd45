// Package sync reconciles card files from local directories and git
// repositories into decks. Every supported file becomes a deck named after
// the file. Cards are matched by content hash, so editing a card in a file
// replaces it and removing it from the file deletes it.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/gitsource"
	"github.com/conorfennell/memora/internal/knol"
	"github.com/conorfennell/memora/internal/parser"
	"github.com/conorfennell/memora/internal/storage"
	"github.com/conorfennell/memora/internal/validation"
)

// GitSyncer brings a local clone of a repository up to date.
type GitSyncer interface {
	Sync(ctx context.Context, url, localPath string) error
}

// Syncer runs source syncs against a store.
type Syncer struct {
	store    storage.Store
	git      GitSyncer
	reposDir string
	validate *validation.Validator

	Now   func() time.Time
	NewID func() string
}

func NewSyncer(store storage.Store, git GitSyncer, reposDir string) (*Syncer, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	return &Syncer{
		store:    store,
		git:      git,
		reposDir: reposDir,
		validate: v,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}, nil
}

// Report summarizes one sync run.
type Report struct {
	Sources int
	Files   int
	Added   int
	Deleted int
	// Errors holds per-file and per-source problems that did not stop the
	// run.
	Errors []error
}

func (r *Report) merge(o Report) {
	r.Files += o.Files
	r.Added += o.Added
	r.Deleted += o.Deleted
	r.Errors = append(r.Errors, o.Errors...)
}

// AddSource registers a directory or git URL for userID. Local paths are
// stored absolute and must be existing directories.
func (s *Syncer) AddSource(ctx context.Context, userID, path string) (*domain.Source, error) {
	src := &domain.Source{UserID: userID, Path: path, Type: domain.SourceGit}
	if !gitsource.IsGitURL(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", path, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("source %s is not a directory", path)
		}
		src.Path, src.Type = abs, domain.SourceLocal
	} else if _, err := gitsource.LocalPath(s.reposDir, path); err != nil {
		return nil, err
	}
	if err := s.store.InsertSource(ctx, src); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Int64("source", src.ID).Str("path", src.Path).Str("type", string(src.Type)).Msg("source-added")
	return src, nil
}

// RemoveSource forgets a source. Its decks and cards are kept.
func (s *Syncer) RemoveSource(ctx context.Context, userID, path string) error {
	if !gitsource.IsGitURL(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	src, err := s.store.FindSourceByPath(ctx, userID, path)
	if err != nil {
		return err
	}
	return s.store.DeleteSource(ctx, src.ID)
}

// Sources lists the sources registered for userID.
func (s *Syncer) Sources(ctx context.Context, userID string) ([]domain.Source, error) {
	return s.store.ListSources(ctx, userID)
}

// Run syncs every source of userID. A failing source is reported and the
// rest still run; only a failure to list sources is returned as an error.
func (s *Syncer) Run(ctx context.Context, userID string) (Report, error) {
	log := log.Ctx(ctx)
	sources, err := s.store.ListSources(ctx, userID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list sources: %w", err)
	}
	var report Report
	if len(sources) == 0 {
		log.Info().Msg("no-sources")
		return report, nil
	}

	for _, src := range sources {
		report.Sources++
		r, err := s.SyncSource(ctx, src)
		report.merge(r)
		if err != nil {
			log.Error().Err(err).Int64("source", src.ID).Str("path", src.Path).Msg("source-sync-failed")
			report.Errors = append(report.Errors, fmt.Errorf("source %s: %w", src.Path, err))
		}
	}
	log.Info().
		Int("sources", report.Sources).
		Int("files", report.Files).
		Int("added", report.Added).
		Int("deleted", report.Deleted).
		Int("errors", len(report.Errors)).
		Msg("sync-complete")
	return report, nil
}

// SyncSource brings one source's decks in line with its files.
func (s *Syncer) SyncSource(ctx context.Context, src domain.Source) (Report, error) {
	root := src.Path
	if src.Type == domain.SourceGit {
		local, err := gitsource.LocalPath(s.reposDir, src.Path)
		if err != nil {
			return Report{}, err
		}
		if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
			return Report{}, fmt.Errorf("failed to create repos directory: %w", err)
		}
		if err := s.git.Sync(ctx, src.Path, local); err != nil {
			return Report{}, err
		}
		root = local
	}
	return s.reconcile(ctx, src, root)
}

func cardKey(deckID, hash string) string {
	return deckID + "/" + hash
}

func (s *Syncer) reconcile(ctx context.Context, src domain.Source, root string) (Report, error) {
	log := log.Ctx(ctx).With().Int64("source", src.ID).Logger()
	var report Report
	found := make(map[string]struct{})
	// Decks of files that failed to sync. Their cards were not all marked
	// found, so none of them are swept this run.
	failed := make(map[string]struct{})

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !parser.Supported(path) || DeckName(path) == "" {
			return nil
		}
		report.Files++
		rel, _ := filepath.Rel(root, path)
		added, invalid, err := s.syncFile(ctx, src, path, found)
		report.Added += added
		if err != nil {
			failed[domain.DeckNameKey(DeckName(path))] = struct{}{}
			log.Warn().Err(err).Str("file", rel).Msg("card-file-skipped")
			report.Errors = append(report.Errors, fmt.Errorf("%s: %w", rel, err))
		}
		if invalid > 0 {
			log.Warn().Int("invalid", invalid).Str("file", rel).Msg("invalid-cards-skipped")
			report.Errors = append(report.Errors, fmt.Errorf("%s: %d invalid cards skipped", rel, invalid))
		}
		return nil
	})
	if walkErr != nil {
		return report, fmt.Errorf("error walking %s: %w", root, walkErr)
	}

	existing, err := s.store.ListCardsBySource(ctx, src.ID)
	if err != nil {
		return report, fmt.Errorf("failed to list cards of source %d: %w", src.ID, err)
	}
	deckNames := make(map[string]string)
	for _, c := range existing {
		if _, ok := found[cardKey(c.DeckID, c.ContentHash)]; ok {
			continue
		}
		if len(failed) > 0 {
			keep, err := s.inFailedDeck(ctx, c.DeckID, failed, deckNames)
			if err != nil {
				log.Warn().Err(err).Str("card", c.ID).Msg("orphaned-card-not-deleted")
				report.Errors = append(report.Errors, err)
				continue
			}
			if keep {
				continue
			}
		}
		if err := s.store.DeleteCard(ctx, c.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Str("card", c.ID).Msg("orphaned-card-not-deleted")
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Deleted++
	}

	if err := s.store.UpdateSourceLastScanned(ctx, src.ID, s.Now()); err != nil {
		log.Warn().Err(err).Msg("last-scanned-not-updated")
	}
	log.Info().
		Str("path", root).
		Int("files", report.Files).
		Int("added", report.Added).
		Int("deleted", report.Deleted).
		Msg("source-reconciled")
	return report, nil
}

// inFailedDeck reports whether deckID belongs to a file that failed to
// sync. names caches deck names by id.
func (s *Syncer) inFailedDeck(ctx context.Context, deckID string, failed map[string]struct{}, names map[string]string) (bool, error) {
	name, ok := names[deckID]
	if !ok {
		deck, err := s.store.GetDeck(ctx, deckID)
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to load deck %s: %w", deckID, err)
		}
		name = deck.Name
		names[deckID] = name
	}
	_, ok = failed[domain.DeckNameKey(name)]
	return ok, nil
}

// syncFile adds the file's new cards to its deck and marks every card it
// still holds in found. Cards that fail validation are counted, not added.
func (s *Syncer) syncFile(ctx context.Context, src domain.Source, path string, found map[string]struct{}) (added, invalid int, err error) {
	contents, err := parser.ParseFile(path)
	if err != nil {
		return 0, 0, err
	}
	deck, err := s.deckFor(ctx, src.UserID, DeckName(path))
	if err != nil {
		return 0, 0, err
	}

	now := s.Now()
	var cards []domain.Card
	for _, c := range contents {
		if err := s.validate.Struct(c); err != nil {
			invalid++
			continue
		}
		hash := knol.Hash(c)
		key := cardKey(deck.ID, hash)
		if _, ok := found[key]; ok {
			continue
		}
		found[key] = struct{}{}

		_, err := s.store.FindCardByHash(ctx, deck.ID, hash)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return 0, invalid, err
		}
		card := domain.NewCard(s.NewID(), deck.ID, src.UserID, c, now)
		card.SourceID = &src.ID
		card.ContentHash = hash
		cards = append(cards, card)
	}
	if len(cards) > 0 {
		if err := s.store.CreateCards(ctx, cards); err != nil {
			return 0, invalid, err
		}
	}
	return len(cards), invalid, nil
}

func (s *Syncer) deckFor(ctx context.Context, userID, name string) (*domain.Deck, error) {
	deck, err := s.store.FindDeckByName(ctx, userID, name)
	if err == nil {
		return deck, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	deck = &domain.Deck{
		ID:        s.NewID(),
		UserID:    userID,
		Name:      name,
		CreatedAt: s.Now(),
	}
	if err := s.store.CreateDeck(ctx, deck); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("deck", deck.ID).Str("name", name).Msg("deck-created")
	return deck, nil
}

// DeckName is the deck a card file syncs into: its base name without the
// extension, cut to the longest allowed deck name. Files whose name is
// empty, like ".md", are not synced.
func DeckName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if r := []rune(name); len(r) > domain.MaxDeckNameLength {
		name = string(r[:domain.MaxDeckNameLength])
	}
	return name
}
