package srs

import (
	"slices"
	"time"

	"github.com/conorfennell/memora/internal/domain"
)

// Selector classifies cards as due or not due. A card becomes due a
// FlexibilityWindow fraction of its interval before its NextReview.
type Selector struct {
	FlexibilityWindow float64
}

// NewSelector returns a selector using the flexibility window of cfg.
func NewSelector(cfg Config) Selector {
	return Selector{FlexibilityWindow: cfg.FlexibilityWindow}
}

// EarlyThreshold is the earliest time card counts as due. For a zero
// interval it equals NextReview.
func (s Selector) EarlyThreshold(card domain.Card) time.Time {
	return card.NextReview.Add(-DaysToDuration(card.Interval * s.FlexibilityWindow))
}

// IsDue reports whether card may be reviewed at now.
func (s Selector) IsDue(card domain.Card, now time.Time) bool {
	return !now.Before(s.EarlyThreshold(card))
}

// Due returns the due cards, preserving input order.
func (s Selector) Due(cards []domain.Card, now time.Time) []domain.Card {
	due, _ := s.Partition(cards, now)
	return due
}

// CountDue returns len(s.Due(cards, now)) without allocating.
func (s Selector) CountDue(cards []domain.Card, now time.Time) int {
	n := 0
	for _, c := range cards {
		if s.IsDue(c, now) {
			n++
		}
	}
	return n
}

// OverLearn returns the cards that are not yet due, soonest first.
func (s Selector) OverLearn(cards []domain.Card, now time.Time) []domain.Card {
	_, notDue := s.Partition(cards, now)
	return notDue
}

// Partition splits cards into due and not-due sets. Every card lands in
// exactly one of them. The not-due set is stable-sorted by NextReview.
func (s Selector) Partition(cards []domain.Card, now time.Time) (due, notDue []domain.Card) {
	due = []domain.Card{}
	notDue = []domain.Card{}
	for _, c := range cards {
		if s.IsDue(c, now) {
			due = append(due, c)
		} else {
			notDue = append(notDue, c)
		}
	}
	slices.SortStableFunc(notDue, func(a, b domain.Card) int {
		return a.NextReview.Compare(b.NextReview)
	})
	return due, notDue
}
