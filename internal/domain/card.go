package domain

import (
	"strings"
	"time"
)

// DefaultEaseFactor is stored on new cards. The active scheduling policy
// never reads or changes it.
const DefaultEaseFactor = 2.5

// Card is a single flashcard and its scheduling state.
type Card struct {
	ID     string
	DeckID string
	UserID string

	Front string
	Back  string
	Tags  []string

	// Interval is measured in (possibly fractional) days.
	Interval    float64
	Repetitions int
	NextReview  time.Time
	EaseFactor  float64

	LastReview *time.Time
	LastGrade  *Grade

	CreatedAt time.Time
	// Version increases by one on every scheduling update.
	Version int64

	// Set only for cards created by a source sync.
	SourceID    *int64
	ContentHash string
}

// Content is the editable, non-scheduling part of a card.
type Content struct {
	Front string   `json:"front" validate:"required,max=500"`
	Back  string   `json:"back" validate:"required,max=500"`
	Tags  []string `json:"tags" validate:"max=20,dive,max=50"`
}

// NewCard returns a card that is due immediately.
func NewCard(id, deckID, userID string, c Content, now time.Time) Card {
	return Card{
		ID:         id,
		DeckID:     deckID,
		UserID:     userID,
		Front:      c.Front,
		Back:       c.Back,
		Tags:       NormalizeTags(c.Tags),
		NextReview: now,
		EaseFactor: DefaultEaseFactor,
		CreatedAt:  now,
	}
}

// NormalizeTags trims tags and drops empty and repeated ones, keeping the
// first occurrence order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ReviewEvent records a single submitted grade. Events are never updated.
type ReviewEvent struct {
	ID               string
	CardID           string
	UserID           string
	Grade            Grade
	Timestamp        time.Time
	ResponseTime     time.Duration
	PreviousInterval float64
	NewInterval      float64
}
