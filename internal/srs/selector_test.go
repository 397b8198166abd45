package srs

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/memora/internal/domain"
)

func TestIsDueFlexibilityWindow(t *testing.T) {
	s := NewSelector(DefaultConfig())
	card := domain.Card{Interval: 2, NextReview: t0.Add(48 * time.Hour)}

	threshold := t0.Add(38*time.Hour + 24*time.Minute)
	assert.Equal(t, threshold, s.EarlyThreshold(card))
	assert.False(t, s.IsDue(card, t0))
	assert.False(t, s.IsDue(card, threshold.Add(-time.Nanosecond)))
	assert.True(t, s.IsDue(card, threshold))
	assert.True(t, s.IsDue(card, t0.Add(48*time.Hour)))
}

func TestIsDueLongInterval(t *testing.T) {
	s := NewSelector(DefaultConfig())
	// 20% of a 10 day interval is 2 days of early review.
	card := domain.Card{Interval: 10, NextReview: t0.Add(72 * time.Hour)}
	assert.Equal(t, t0.Add(24*time.Hour), s.EarlyThreshold(card))
	assert.False(t, s.IsDue(card, t0))
	assert.True(t, s.IsDue(card, t0.Add(24*time.Hour)))
}

func TestIsDueAtStartOfWindow(t *testing.T) {
	s := NewSelector(DefaultConfig())
	// threshold = nextReview - interval*window = (now+2d) - 10d*0.2 = now,
	// so a 10 day card two days from its review is already due.
	card := domain.Card{Interval: 10, NextReview: t0.Add(48 * time.Hour)}
	assert.Equal(t, t0, s.EarlyThreshold(card))
	assert.True(t, s.IsDue(card, t0))
	assert.False(t, s.IsDue(card, t0.Add(-time.Second)))
	assert.Equal(t, 1, s.CountDue([]domain.Card{card}, t0))
}

func TestIsDueZeroInterval(t *testing.T) {
	s := NewSelector(DefaultConfig())
	card := domain.Card{Interval: 0, NextReview: t0}
	assert.Equal(t, t0, s.EarlyThreshold(card))
	assert.True(t, s.IsDue(card, t0))
	assert.False(t, s.IsDue(card, t0.Add(-time.Nanosecond)))
}

func TestPartition(t *testing.T) {
	s := NewSelector(DefaultConfig())
	cards := []domain.Card{
		{ID: "late", Interval: 5, NextReview: t0.Add(10 * 24 * time.Hour)},
		{ID: "new", NextReview: t0},
		{ID: "soon", Interval: 1, NextReview: t0.Add(3 * 24 * time.Hour)},
		{ID: "overdue", Interval: 3, NextReview: t0.Add(-time.Hour)},
	}
	due, notDue := s.Partition(cards, t0)
	assert.Equal(t, []string{"new", "overdue"}, ids(due))
	assert.Equal(t, []string{"soon", "late"}, ids(notDue))
	assert.Equal(t, 2, s.CountDue(cards, t0))
	assert.Equal(t, ids(due), ids(s.Due(cards, t0)))
	assert.Equal(t, ids(notDue), ids(s.OverLearn(cards, t0)))
}

func TestPartitionEmpty(t *testing.T) {
	s := NewSelector(DefaultConfig())
	due, notDue := s.Partition(nil, t0)
	assert.Empty(t, due)
	assert.Empty(t, notDue)
}

func TestPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	s := NewSelector(DefaultConfig())
	r := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 50; round++ {
		cards := make([]domain.Card, 40)
		for i := range cards {
			cards[i] = domain.Card{
				ID:         fmt.Sprintf("c%d", i),
				Interval:   float64(r.IntN(4)) * r.Float64() * 30,
				NextReview: t0.Add(time.Duration(r.IntN(20*24)-5*24) * time.Hour),
			}
		}
		now := t0.Add(time.Duration(r.IntN(48)) * time.Hour)
		due, notDue := s.Partition(cards, now)

		require.Len(t, append(ids(due), ids(notDue)...), len(cards))
		seen := map[string]bool{}
		for _, c := range due {
			seen[c.ID] = true
			assert.True(t, s.IsDue(c, now))
		}
		for _, c := range notDue {
			require.False(t, seen[c.ID], "card %s in both sets", c.ID)
			seen[c.ID] = true
			assert.False(t, s.IsDue(c, now))
		}
		assert.Len(t, seen, len(cards))
		for i := 1; i < len(notDue); i++ {
			assert.False(t, notDue[i].NextReview.Before(notDue[i-1].NextReview))
		}
	}
}

func ids(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
