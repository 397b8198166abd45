package domain

import (
	"strings"
	"time"
)

// Deck is a named collection of cards owned by one user.
type Deck struct {
	ID           string
	UserID       string
	Name         string
	CardCount    int
	LastReviewed *time.Time
	CreatedAt    time.Time
}

// MaxDeckNameLength is the longest deck name accepted, in characters.
const MaxDeckNameLength = 100

// DeckNameKey is the form deck names are compared by: trimmed and lower
// cased.
func DeckNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SourceType distinguishes local directories from git repositories.
type SourceType string

const (
	SourceLocal SourceType = "local"
	SourceGit   SourceType = "git"
)

// Source is a directory or git repository whose card files are synced
// into decks.
type Source struct {
	ID          int64
	UserID      string
	Path        string
	Type        SourceType
	LastScanned *time.Time
}
