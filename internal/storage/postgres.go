package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const uniqueViolation = "23505"

// Postgres is the remote Store backend.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// OpenPostgres connects to url and runs any pending schema migrations.
func OpenPostgres(ctx context.Context, url string) (*Postgres, error) {
	if err := Migrate(url); err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Migrate applies the embedded migrations to the database at url.
func Migrate(url string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(url))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, dirty, err := m.Version()
	if err == nil {
		log.Debug().Uint("version", version).Bool("dirty", dirty).Msg("schema-migrated")
	}
	return nil
}

// migrateURL rewrites a postgres:// URL to the scheme the pgx/v5 migrate
// driver registers.
func migrateURL(url string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(url, prefix) {
			return "pgx5://" + strings.TrimPrefix(url, prefix)
		}
	}
	return url
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var (
		c          domain.Card
		lastReview pgtype.Timestamptz
		lastGrade  pgtype.Int4
		sourceID   pgtype.Int8
	)
	err := row.Scan(
		&c.ID,
		&c.DeckID,
		&c.UserID,
		&c.Front,
		&c.Back,
		&c.Tags,
		&c.Interval,
		&c.Repetitions,
		&c.NextReview,
		&c.EaseFactor,
		&lastReview,
		&lastGrade,
		&c.CreatedAt,
		&c.Version,
		&sourceID,
		&c.ContentHash,
	)
	if err != nil {
		return domain.Card{}, err
	}
	if lastReview.Valid {
		t := lastReview.Time
		c.LastReview = &t
	}
	if lastGrade.Valid {
		g := domain.Grade(lastGrade.Int32)
		c.LastGrade = &g
	}
	if sourceID.Valid {
		id := sourceID.Int64
		c.SourceID = &id
	}
	return c, nil
}

func collectCards(rows pgx.Rows) ([]domain.Card, error) {
	defer rows.Close()
	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// GetCard retrieves a card by id.
func (p *Postgres) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	c, err := scanCard(p.pool.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get card %s: %w", id, err)
	}
	return &c, nil
}

// ListCards returns the cards of a deck, newest first.
func (p *Postgres) ListCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+cardColumns+` FROM cards
		WHERE deck_id = $1
		ORDER BY created_at DESC, seq DESC
	`, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for deck %s: %w", deckID, err)
	}
	cards, err := collectCards(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cards for deck %s: %w", deckID, err)
	}
	return cards, nil
}

// ListCardsBySource retrieves all cards created from a source.
func (p *Postgres) ListCardsBySource(ctx context.Context, sourceID int64) ([]domain.Card, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+cardColumns+` FROM cards WHERE source_id = $1`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for source ID %d: %w", sourceID, err)
	}
	cards, err := collectCards(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cards for source ID %d: %w", sourceID, err)
	}
	return cards, nil
}

// FindCardByHash finds a card in a deck by its content hash.
func (p *Postgres) FindCardByHash(ctx context.Context, deckID, hash string) (*domain.Card, error) {
	c, err := scanCard(p.pool.QueryRow(ctx, `
		SELECT `+cardColumns+` FROM cards
		WHERE deck_id = $1 AND content_hash = $2
		LIMIT 1
	`, deckID, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("card with hash %s: %w", hash, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find card by hash %s: %w", hash, err)
	}
	return &c, nil
}

// CreateCards inserts cards and refreshes the card counts of their decks.
func (p *Postgres) CreateCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	decks := map[string]struct{}{}
	for _, c := range cards {
		var lastGrade pgtype.Int4
		if c.LastGrade != nil {
			lastGrade = pgtype.Int4{Int32: int32(*c.LastGrade), Valid: true}
		}
		var sourceID pgtype.Int8
		if c.SourceID != nil {
			sourceID = pgtype.Int8{Int64: *c.SourceID, Valid: true}
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO cards (`+cardColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`,
			c.ID, c.DeckID, c.UserID, c.Front, c.Back, domain.NormalizeTags(c.Tags),
			c.Interval, c.Repetitions, c.NextReview, c.EaseFactor,
			timestamptz(c.LastReview), lastGrade, c.CreatedAt, c.Version, sourceID, c.ContentHash,
		)
		if err != nil {
			return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
		}
		decks[c.DeckID] = struct{}{}
	}
	for deckID := range decks {
		if err := pgRefreshCardCount(ctx, tx, deckID); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cards: %w", err)
	}
	return nil
}

func pgRefreshCardCount(ctx context.Context, tx pgx.Tx, deckID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE decks
		SET card_count = (SELECT COUNT(*) FROM cards WHERE deck_id = $1)
		WHERE id = $1
	`, deckID)
	if err != nil {
		return fmt.Errorf("failed to update card count for deck %s: %w", deckID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, ErrNotFound)
	}
	return nil
}

// UpdateCardContent replaces a card's front, back and tags.
func (p *Postgres) UpdateCardContent(ctx context.Context, id string, c domain.Content) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE cards SET front = $1, back = $2, tags = $3 WHERE id = $4
	`, c.Front, c.Back, domain.NormalizeTags(c.Tags), id)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return nil
}

// ApplyReview updates a card's scheduling state if its version still
// matches, and stamps the deck's last review time.
func (p *Postgres) ApplyReview(ctx context.Context, u ReviewUpdate) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE cards
		SET interval_days = $1, repetitions = $2, next_review = $3, ease_factor = $4,
			last_review = $5, last_grade = $6, version = version + 1
		WHERE id = $7 AND version = $8
	`, u.Interval, u.Repetitions, u.NextReview, u.EaseFactor, u.ReviewedAt, int32(u.Grade), u.CardID, u.ExpectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update card state for %s: %w", u.CardID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, u.CardID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check card %s: %w", u.CardID, err)
		}
		if !exists {
			return fmt.Errorf("card %s: %w", u.CardID, ErrNotFound)
		}
		return fmt.Errorf("card %s at version %d: %w", u.CardID, u.ExpectedVersion, ErrConflict)
	}
	if _, err := tx.Exec(ctx, `UPDATE decks SET last_reviewed = $1 WHERE id = $2`, u.ReviewedAt, u.DeckID); err != nil {
		return fmt.Errorf("failed to update last reviewed for deck %s: %w", u.DeckID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit review of card %s: %w", u.CardID, err)
	}
	return nil
}

// DeleteCard removes a card and refreshes its deck's card count.
func (p *Postgres) DeleteCard(ctx context.Context, id string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var deckID string
	if err := tx.QueryRow(ctx, `DELETE FROM cards WHERE id = $1 RETURNING deck_id`, id).Scan(&deckID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("card %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	if err := pgRefreshCardCount(ctx, tx, deckID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete of card %s: %w", id, err)
	}
	return nil
}

func scanDeck(row pgx.Row) (domain.Deck, error) {
	var (
		d            domain.Deck
		lastReviewed pgtype.Timestamptz
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.CardCount, &lastReviewed, &d.CreatedAt); err != nil {
		return domain.Deck{}, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		d.LastReviewed = &t
	}
	return d, nil
}

const pgDeckColumns = `id, user_id, name, card_count, last_reviewed, created_at`

// CreateDeck inserts a deck, rejecting a name the user already has.
func (p *Postgres) CreateDeck(ctx context.Context, deck *domain.Deck) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO decks (id, user_id, name, name_key, card_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, deck.ID, deck.UserID, deck.Name, domain.DeckNameKey(deck.Name), deck.CardCount, deck.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("deck name %q: %w", deck.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert deck %s: %w", deck.Name, err)
	}
	return nil
}

// GetDeck retrieves a deck by id.
func (p *Postgres) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	d, err := scanDeck(p.pool.QueryRow(ctx, `SELECT `+pgDeckColumns+` FROM decks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("deck %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deck %s: %w", id, err)
	}
	return &d, nil
}

// FindDeckByName looks a deck up by name, ignoring case.
func (p *Postgres) FindDeckByName(ctx context.Context, userID, name string) (*domain.Deck, error) {
	d, err := scanDeck(p.pool.QueryRow(ctx, `
		SELECT `+pgDeckColumns+` FROM decks WHERE user_id = $1 AND name_key = $2
	`, userID, domain.DeckNameKey(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("deck %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find deck by name %s: %w", name, err)
	}
	return &d, nil
}

// ListDecks returns a user's decks, newest first.
func (p *Postgres) ListDecks(ctx context.Context, userID string) ([]domain.Deck, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+pgDeckColumns+` FROM decks
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks for user %s: %w", userID, err)
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck row: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// RenameDeck changes a deck's name, rejecting a name the user already has.
func (p *Postgres) RenameDeck(ctx context.Context, id, name string) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE decks SET name = $1, name_key = $2 WHERE id = $3
	`, name, domain.DeckNameKey(name), id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("deck name %q: %w", name, ErrDuplicate)
		}
		return fmt.Errorf("failed to rename deck %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteDeck removes a deck. Its cards go with it through ON DELETE CASCADE.
func (p *Postgres) DeleteDeck(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM decks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deck %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}
	return nil
}

// AppendReview writes one review event.
func (p *Postgres) AppendReview(ctx context.Context, ev domain.ReviewEvent) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO review_events (id, card_id, user_id, grade, reviewed_at, response_seconds, previous_interval, new_interval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ev.ID, ev.CardID, ev.UserID, int32(ev.Grade), ev.Timestamp, ev.ResponseTime.Seconds(), ev.PreviousInterval, ev.NewInterval)
	if err != nil {
		return fmt.Errorf("failed to append review for card %s: %w", ev.CardID, err)
	}
	return nil
}

// ListReviews returns a card's review events, newest first.
func (p *Postgres) ListReviews(ctx context.Context, cardID string) ([]domain.ReviewEvent, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, card_id, user_id, grade, reviewed_at, response_seconds, previous_interval, new_interval
		FROM review_events
		WHERE card_id = $1
		ORDER BY reviewed_at DESC, seq DESC
	`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for card %s: %w", cardID, err)
	}
	defer rows.Close()

	events := []domain.ReviewEvent{}
	for rows.Next() {
		var (
			ev      domain.ReviewEvent
			grade   int32
			seconds float64
		)
		if err := rows.Scan(&ev.ID, &ev.CardID, &ev.UserID, &grade, &ev.Timestamp, &seconds, &ev.PreviousInterval, &ev.NewInterval); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		ev.Grade = domain.Grade(grade)
		ev.ResponseTime = secondsToDuration(seconds)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func scanSource(row pgx.Row) (domain.Source, error) {
	var (
		src         domain.Source
		typ         string
		lastScanned pgtype.Timestamptz
	)
	if err := row.Scan(&src.ID, &src.UserID, &src.Path, &typ, &lastScanned); err != nil {
		return domain.Source{}, err
	}
	src.Type = domain.SourceType(typ)
	if lastScanned.Valid {
		t := lastScanned.Time
		src.LastScanned = &t
	}
	return src, nil
}

// InsertSource inserts a new source and sets its ID.
func (p *Postgres) InsertSource(ctx context.Context, src *domain.Source) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO sources (user_id, path, type) VALUES ($1, $2, $3) RETURNING id
	`, src.UserID, src.Path, string(src.Type)).Scan(&src.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("source %s: %w", src.Path, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert source %s: %w", src.Path, err)
	}
	return nil
}

// FindSourceByPath retrieves a user's source by its path.
func (p *Postgres) FindSourceByPath(ctx context.Context, userID, path string) (*domain.Source, error) {
	src, err := scanSource(p.pool.QueryRow(ctx, `
		SELECT id, user_id, path, type, last_scanned FROM sources WHERE user_id = $1 AND path = $2
	`, userID, path))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("source %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find source by path %s: %w", path, err)
	}
	return &src, nil
}

// ListSources retrieves all of a user's sources.
func (p *Postgres) ListSources(ctx context.Context, userID string) ([]domain.Source, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, user_id, path, type, last_scanned FROM sources WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sources: %w", err)
	}
	defer rows.Close()

	sources := []domain.Source{}
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// DeleteSource removes a source; its cards stay, unlinked.
func (p *Postgres) DeleteSource(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM sources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete source %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateSourceLastScanned updates the last_scanned timestamp for a source.
func (p *Postgres) UpdateSourceLastScanned(ctx context.Context, id int64, at time.Time) error {
	tag, err := p.pool.Exec(ctx, `UPDATE sources SET last_scanned = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last scanned for source ID %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %d: %w", id, ErrNotFound)
	}
	return nil
}
