package storage

const sqliteSchema = `
-- The 'decks' table holds named card collections. name_key is the lower-cased
-- name, which keeps names unique per user regardless of case.
CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    name_key TEXT NOT NULL,
    card_count INTEGER NOT NULL DEFAULT 0,
    last_reviewed DATETIME,
    created_at DATETIME NOT NULL,

    UNIQUE(user_id, name_key)
);

-- The 'sources' table tracks the origin of synced cards, either a local directory or a git repository.
CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    path TEXT NOT NULL,
    type TEXT NOT NULL,
    last_scanned DATETIME,

    UNIQUE(user_id, path)
);

-- The 'cards' table stores each flashcard and its scheduling state.
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    front TEXT NOT NULL,
    back TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]', -- JSON array
    interval_days REAL NOT NULL DEFAULT 0,
    repetitions INTEGER NOT NULL DEFAULT 0,
    next_review DATETIME NOT NULL,
    ease_factor REAL NOT NULL,
    last_review DATETIME,
    last_grade INTEGER,
    created_at DATETIME NOT NULL,
    version INTEGER NOT NULL DEFAULT 0,
    source_id INTEGER,
    content_hash TEXT NOT NULL DEFAULT '',

    FOREIGN KEY(deck_id) REFERENCES decks(id),
    FOREIGN KEY(source_id) REFERENCES sources(id)
);

CREATE INDEX IF NOT EXISTS cards_deck_id ON cards(deck_id);
CREATE INDEX IF NOT EXISTS cards_source_id ON cards(source_id);

-- The 'review_events' table is the append-only review history.
CREATE TABLE IF NOT EXISTS review_events (
    id TEXT PRIMARY KEY,
    card_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    grade INTEGER NOT NULL,
    reviewed_at DATETIME NOT NULL,
    response_seconds REAL NOT NULL,
    previous_interval REAL NOT NULL,
    new_interval REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS review_events_card_id ON review_events(card_id);
`
