package srs

import (
	"time"

	"github.com/conorfennell/memora/internal/domain"
)

// State is the scheduling state a review produces for a card.
type State struct {
	Interval    float64   `json:"interval"`
	Repetitions int       `json:"repetitions"`
	NextReview  time.Time `json:"nextReview"`
	EaseFactor  float64   `json:"easeFactor"`
}

// Engine turns a card and a grade into the card's next scheduling state.
type Engine struct {
	policy *Policy
}

// NewEngine returns an engine driven by policy.
func NewEngine(policy *Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's interval policy.
func (e *Engine) Policy() *Policy {
	return e.policy
}

// NextState calculates the state card would have after being graded g at
// now. It has no side effects.
func (e *Engine) NextState(card domain.Card, g domain.Grade, now time.Time) (State, error) {
	if err := e.policy.Validate(g); err != nil {
		return State{}, err
	}
	interval := e.policy.NextInterval(card.Interval, g)

	reps := card.Repetitions + 1
	if g.Failed() {
		reps = 0
	}
	return State{
		Interval:    interval,
		Repetitions: reps,
		NextReview:  now.Add(DaysToDuration(interval)),
		EaseFactor:  card.EaseFactor,
	}, nil
}

// Apply copies s and the review trace onto card.
func (s State) Apply(card *domain.Card, g domain.Grade, reviewedAt time.Time) {
	card.Interval = s.Interval
	card.Repetitions = s.Repetitions
	card.NextReview = s.NextReview
	card.EaseFactor = s.EaseFactor
	card.LastGrade = &g
	card.LastReview = &reviewedAt
}
