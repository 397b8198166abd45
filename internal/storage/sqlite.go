package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Registers the sqlite driver

	"github.com/conorfennell/memora/internal/domain"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLite is the local Store backend.
type SQLite struct {
	conn *sqlx.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens the database at dsn and ensures the schema is up to date.
// Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLite{conn: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

type cardRow struct {
	ID          string        `db:"id"`
	DeckID      string        `db:"deck_id"`
	UserID      string        `db:"user_id"`
	Front       string        `db:"front"`
	Back        string        `db:"back"`
	Tags        string        `db:"tags"`
	Interval    float64       `db:"interval_days"`
	Repetitions int           `db:"repetitions"`
	NextReview  time.Time     `db:"next_review"`
	EaseFactor  float64       `db:"ease_factor"`
	LastReview  sql.NullTime  `db:"last_review"`
	LastGrade   sql.NullInt64 `db:"last_grade"`
	CreatedAt   time.Time     `db:"created_at"`
	Version     int64         `db:"version"`
	SourceID    sql.NullInt64 `db:"source_id"`
	ContentHash string        `db:"content_hash"`
}

const cardColumns = `id, deck_id, user_id, front, back, tags, interval_days, repetitions, next_review,
	ease_factor, last_review, last_grade, created_at, version, source_id, content_hash`

func newCardRow(c domain.Card) (cardRow, error) {
	tags, err := json.Marshal(domain.NormalizeTags(c.Tags))
	if err != nil {
		return cardRow{}, fmt.Errorf("failed to encode tags for card %s: %w", c.ID, err)
	}
	r := cardRow{
		ID:          c.ID,
		DeckID:      c.DeckID,
		UserID:      c.UserID,
		Front:       c.Front,
		Back:        c.Back,
		Tags:        string(tags),
		Interval:    c.Interval,
		Repetitions: c.Repetitions,
		NextReview:  c.NextReview.UTC(),
		EaseFactor:  c.EaseFactor,
		CreatedAt:   c.CreatedAt.UTC(),
		Version:     c.Version,
		ContentHash: c.ContentHash,
	}
	if c.LastReview != nil {
		r.LastReview = sql.NullTime{Time: c.LastReview.UTC(), Valid: true}
	}
	if c.LastGrade != nil {
		r.LastGrade = sql.NullInt64{Int64: int64(*c.LastGrade), Valid: true}
	}
	if c.SourceID != nil {
		r.SourceID = sql.NullInt64{Int64: *c.SourceID, Valid: true}
	}
	return r, nil
}

func (r cardRow) card() (domain.Card, error) {
	c := domain.Card{
		ID:          r.ID,
		DeckID:      r.DeckID,
		UserID:      r.UserID,
		Front:       r.Front,
		Back:        r.Back,
		Interval:    r.Interval,
		Repetitions: r.Repetitions,
		NextReview:  r.NextReview,
		EaseFactor:  r.EaseFactor,
		CreatedAt:   r.CreatedAt,
		Version:     r.Version,
		ContentHash: r.ContentHash,
	}
	if err := json.Unmarshal([]byte(r.Tags), &c.Tags); err != nil {
		return domain.Card{}, fmt.Errorf("failed to decode tags for card %s: %w", r.ID, err)
	}
	if r.LastReview.Valid {
		t := r.LastReview.Time
		c.LastReview = &t
	}
	if r.LastGrade.Valid {
		g := domain.Grade(r.LastGrade.Int64)
		c.LastGrade = &g
	}
	if r.SourceID.Valid {
		id := r.SourceID.Int64
		c.SourceID = &id
	}
	return c, nil
}

func cardsFromRows(rows []cardRow) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(rows))
	for _, r := range rows {
		c, err := r.card()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// GetCard retrieves a card by id.
func (s *SQLite) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var r cardRow
	err := s.conn.GetContext(ctx, &r, `SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get card %s: %w", id, err)
	}
	c, err := r.card()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCards returns the cards of a deck, newest first.
func (s *SQLite) ListCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	var rows []cardRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT `+cardColumns+` FROM cards
		WHERE deck_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for deck %s: %w", deckID, err)
	}
	return cardsFromRows(rows)
}

// ListCardsBySource retrieves all cards created from a source.
func (s *SQLite) ListCardsBySource(ctx context.Context, sourceID int64) ([]domain.Card, error) {
	var rows []cardRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT `+cardColumns+` FROM cards
		WHERE source_id = ?
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for source ID %d: %w", sourceID, err)
	}
	return cardsFromRows(rows)
}

// FindCardByHash finds a card in a deck by its content hash.
func (s *SQLite) FindCardByHash(ctx context.Context, deckID, hash string) (*domain.Card, error) {
	var r cardRow
	err := s.conn.GetContext(ctx, &r, `
		SELECT `+cardColumns+` FROM cards
		WHERE deck_id = ? AND content_hash = ?
		LIMIT 1
	`, deckID, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("card with hash %s: %w", hash, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find card by hash %s: %w", hash, err)
	}
	c, err := r.card()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCards inserts cards and refreshes the card counts of their decks.
func (s *SQLite) CreateCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	decks := map[string]struct{}{}
	for _, c := range cards {
		r, err := newCardRow(c)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO cards (`+cardColumns+`)
			VALUES (:id, :deck_id, :user_id, :front, :back, :tags, :interval_days, :repetitions, :next_review,
				:ease_factor, :last_review, :last_grade, :created_at, :version, :source_id, :content_hash)
		`, r); err != nil {
			return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
		}
		decks[c.DeckID] = struct{}{}
	}
	for deckID := range decks {
		if err := refreshCardCount(ctx, tx, deckID); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cards: %w", err)
	}
	return nil
}

func refreshCardCount(ctx context.Context, tx *sqlx.Tx, deckID string) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE decks
		SET card_count = (SELECT COUNT(*) FROM cards WHERE deck_id = ?)
		WHERE id = ?
	`, deckID, deckID)
	if err != nil {
		return fmt.Errorf("failed to update card count for deck %s: %w", deckID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update card count for deck %s: %w", deckID, err)
	}
	if n == 0 {
		return fmt.Errorf("deck %s: %w", deckID, ErrNotFound)
	}
	return nil
}

// UpdateCardContent replaces a card's front, back and tags. Scheduling
// fields are left alone.
func (s *SQLite) UpdateCardContent(ctx context.Context, id string, c domain.Content) error {
	tags, err := json.Marshal(domain.NormalizeTags(c.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags for card %s: %w", id, err)
	}
	res, err := s.conn.ExecContext(ctx, `
		UPDATE cards
		SET front = ?, back = ?, tags = ?
		WHERE id = ?
	`, c.Front, c.Back, string(tags), id)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", id, err)
	}
	return expectOne(res, "card", id)
}

// ApplyReview updates an existing card's scheduling state and the deck's
// last review time.
func (s *SQLite) ApplyReview(ctx context.Context, u ReviewUpdate) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE cards
		SET interval_days = ?, repetitions = ?, next_review = ?, ease_factor = ?,
			last_review = ?, last_grade = ?, version = version + 1
		WHERE id = ? AND version = ?
	`,
		u.Interval,
		u.Repetitions,
		u.NextReview.UTC(),
		u.EaseFactor,
		u.ReviewedAt.UTC(),
		int(u.Grade),
		u.CardID,
		u.ExpectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update card state for %s: %w", u.CardID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update card state for %s: %w", u.CardID, err)
	}
	if n == 0 {
		var exists int
		if err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM cards WHERE id = ?`, u.CardID); err != nil {
			return fmt.Errorf("failed to check card %s: %w", u.CardID, err)
		}
		if exists == 0 {
			return fmt.Errorf("card %s: %w", u.CardID, ErrNotFound)
		}
		return fmt.Errorf("card %s at version %d: %w", u.CardID, u.ExpectedVersion, ErrConflict)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE decks SET last_reviewed = ? WHERE id = ?
	`, u.ReviewedAt.UTC(), u.DeckID); err != nil {
		return fmt.Errorf("failed to update last reviewed for deck %s: %w", u.DeckID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review of card %s: %w", u.CardID, err)
	}
	return nil
}

// DeleteCard removes a card and refreshes its deck's card count.
func (s *SQLite) DeleteCard(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var deckID string
	if err := tx.GetContext(ctx, &deckID, `SELECT deck_id FROM cards WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("card %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to find card %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	if err := refreshCardCount(ctx, tx, deckID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of card %s: %w", id, err)
	}
	return nil
}

type deckRow struct {
	ID           string       `db:"id"`
	UserID       string       `db:"user_id"`
	Name         string       `db:"name"`
	NameKey      string       `db:"name_key"`
	CardCount    int          `db:"card_count"`
	LastReviewed sql.NullTime `db:"last_reviewed"`
	CreatedAt    time.Time    `db:"created_at"`
}

const deckColumns = `id, user_id, name, name_key, card_count, last_reviewed, created_at`

func (r deckRow) deck() domain.Deck {
	d := domain.Deck{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		CardCount: r.CardCount,
		CreatedAt: r.CreatedAt,
	}
	if r.LastReviewed.Valid {
		t := r.LastReviewed.Time
		d.LastReviewed = &t
	}
	return d
}

// CreateDeck inserts a deck, rejecting a name the user already has.
func (s *SQLite) CreateDeck(ctx context.Context, deck *domain.Deck) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkDeckName(ctx, tx, deck.UserID, deck.Name, ""); err != nil {
		return err
	}
	r := deckRow{
		ID:        deck.ID,
		UserID:    deck.UserID,
		Name:      deck.Name,
		NameKey:   domain.DeckNameKey(deck.Name),
		CardCount: deck.CardCount,
		CreatedAt: deck.CreatedAt.UTC(),
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO decks (`+deckColumns+`)
		VALUES (:id, :user_id, :name, :name_key, :card_count, :last_reviewed, :created_at)
	`, r); err != nil {
		return fmt.Errorf("failed to insert deck %s: %w", deck.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deck %s: %w", deck.Name, err)
	}
	return nil
}

func checkDeckName(ctx context.Context, tx *sqlx.Tx, userID, name, exceptID string) error {
	var n int
	err := tx.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM decks
		WHERE user_id = ? AND name_key = ? AND id != ?
	`, userID, domain.DeckNameKey(name), exceptID)
	if err != nil {
		return fmt.Errorf("failed to check deck name %s: %w", name, err)
	}
	if n > 0 {
		return fmt.Errorf("deck name %q: %w", name, ErrDuplicate)
	}
	return nil
}

// GetDeck retrieves a deck by id.
func (s *SQLite) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	var r deckRow
	if err := s.conn.GetContext(ctx, &r, `SELECT `+deckColumns+` FROM decks WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deck %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deck %s: %w", id, err)
	}
	d := r.deck()
	return &d, nil
}

// FindDeckByName looks a deck up by name, ignoring case.
func (s *SQLite) FindDeckByName(ctx context.Context, userID, name string) (*domain.Deck, error) {
	var r deckRow
	err := s.conn.GetContext(ctx, &r, `
		SELECT `+deckColumns+` FROM decks
		WHERE user_id = ? AND name_key = ?
	`, userID, domain.DeckNameKey(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deck %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find deck by name %s: %w", name, err)
	}
	d := r.deck()
	return &d, nil
}

// ListDecks returns a user's decks, newest first.
func (s *SQLite) ListDecks(ctx context.Context, userID string) ([]domain.Deck, error) {
	var rows []deckRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT `+deckColumns+` FROM decks
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks for user %s: %w", userID, err)
	}
	decks := make([]domain.Deck, 0, len(rows))
	for _, r := range rows {
		decks = append(decks, r.deck())
	}
	return decks, nil
}

// RenameDeck changes a deck's name, rejecting a name the user already has.
func (s *SQLite) RenameDeck(ctx context.Context, id, name string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var userID string
	if err := tx.GetContext(ctx, &userID, `SELECT user_id FROM decks WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("deck %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to get deck %s: %w", id, err)
	}
	if err := checkDeckName(ctx, tx, userID, name, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE decks SET name = ?, name_key = ? WHERE id = ?
	`, name, domain.DeckNameKey(name), id); err != nil {
		return fmt.Errorf("failed to rename deck %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rename of deck %s: %w", id, err)
	}
	return nil
}

// DeleteDeck removes a deck together with its cards.
func (s *SQLite) DeleteDeck(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete cards of deck %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deck %s: %w", id, err)
	}
	if err := expectOne(res, "deck", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of deck %s: %w", id, err)
	}
	return nil
}

type reviewRow struct {
	ID               string    `db:"id"`
	CardID           string    `db:"card_id"`
	UserID           string    `db:"user_id"`
	Grade            int       `db:"grade"`
	ReviewedAt       time.Time `db:"reviewed_at"`
	ResponseSeconds  float64   `db:"response_seconds"`
	PreviousInterval float64   `db:"previous_interval"`
	NewInterval      float64   `db:"new_interval"`
}

// AppendReview writes one review event.
func (s *SQLite) AppendReview(ctx context.Context, ev domain.ReviewEvent) error {
	r := reviewRow{
		ID:               ev.ID,
		CardID:           ev.CardID,
		UserID:           ev.UserID,
		Grade:            int(ev.Grade),
		ReviewedAt:       ev.Timestamp.UTC(),
		ResponseSeconds:  ev.ResponseTime.Seconds(),
		PreviousInterval: ev.PreviousInterval,
		NewInterval:      ev.NewInterval,
	}
	if _, err := s.conn.NamedExecContext(ctx, `
		INSERT INTO review_events (id, card_id, user_id, grade, reviewed_at, response_seconds, previous_interval, new_interval)
		VALUES (:id, :card_id, :user_id, :grade, :reviewed_at, :response_seconds, :previous_interval, :new_interval)
	`, r); err != nil {
		return fmt.Errorf("failed to append review for card %s: %w", ev.CardID, err)
	}
	return nil
}

// ListReviews returns a card's review events, newest first.
func (s *SQLite) ListReviews(ctx context.Context, cardID string) ([]domain.ReviewEvent, error) {
	var rows []reviewRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT id, card_id, user_id, grade, reviewed_at, response_seconds, previous_interval, new_interval
		FROM review_events
		WHERE card_id = ?
		ORDER BY reviewed_at DESC, rowid DESC
	`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for card %s: %w", cardID, err)
	}
	events := make([]domain.ReviewEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, domain.ReviewEvent{
			ID:               r.ID,
			CardID:           r.CardID,
			UserID:           r.UserID,
			Grade:            domain.Grade(r.Grade),
			Timestamp:        r.ReviewedAt,
			ResponseTime:     secondsToDuration(r.ResponseSeconds),
			PreviousInterval: r.PreviousInterval,
			NewInterval:      r.NewInterval,
		})
	}
	return events, nil
}

type sourceRow struct {
	ID          int64        `db:"id"`
	UserID      string       `db:"user_id"`
	Path        string       `db:"path"`
	Type        string       `db:"type"`
	LastScanned sql.NullTime `db:"last_scanned"`
}

func (r sourceRow) source() domain.Source {
	src := domain.Source{
		ID:     r.ID,
		UserID: r.UserID,
		Path:   r.Path,
		Type:   domain.SourceType(r.Type),
	}
	if r.LastScanned.Valid {
		t := r.LastScanned.Time
		src.LastScanned = &t
	}
	return src
}

// InsertSource inserts a new source and sets its ID.
func (s *SQLite) InsertSource(ctx context.Context, src *domain.Source) error {
	if _, err := s.FindSourceByPath(ctx, src.UserID, src.Path); err == nil {
		return fmt.Errorf("source %s: %w", src.Path, ErrDuplicate)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO sources (user_id, path, type)
		VALUES (?, ?, ?)
	`, src.UserID, src.Path, string(src.Type))
	if err != nil {
		return fmt.Errorf("failed to insert source %s: %w", src.Path, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID for source %s: %w", src.Path, err)
	}
	src.ID = id
	return nil
}

// FindSourceByPath retrieves a user's source by its path.
func (s *SQLite) FindSourceByPath(ctx context.Context, userID, path string) (*domain.Source, error) {
	var r sourceRow
	err := s.conn.GetContext(ctx, &r, `
		SELECT id, user_id, path, type, last_scanned
		FROM sources WHERE user_id = ? AND path = ?
	`, userID, path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find source by path %s: %w", path, err)
	}
	src := r.source()
	return &src, nil
}

// ListSources retrieves all of a user's sources.
func (s *SQLite) ListSources(ctx context.Context, userID string) ([]domain.Source, error) {
	var rows []sourceRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT id, user_id, path, type, last_scanned
		FROM sources WHERE user_id = ?
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sources: %w", err)
	}
	sources := make([]domain.Source, 0, len(rows))
	for _, r := range rows {
		sources = append(sources, r.source())
	}
	return sources, nil
}

// DeleteSource removes a source. Cards synced from it are kept but no
// longer linked to it.
func (s *SQLite) DeleteSource(ctx context.Context, id int64) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE cards SET source_id = NULL WHERE source_id = ?`, id); err != nil {
		return fmt.Errorf("failed to unlink cards of source %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM sources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete source %d: %w", id, err)
	}
	if err := expectOne(res, "source", fmt.Sprint(id)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of source %d: %w", id, err)
	}
	return nil
}

// UpdateSourceLastScanned updates the last_scanned timestamp for a source.
func (s *SQLite) UpdateSourceLastScanned(ctx context.Context, id int64, at time.Time) error {
	res, err := s.conn.ExecContext(ctx, `
		UPDATE sources
		SET last_scanned = ?
		WHERE id = ?
	`, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update last scanned for source ID %d: %w", id, err)
	}
	return expectOne(res, "source", fmt.Sprint(id))
}

func expectOne(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s %s: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
