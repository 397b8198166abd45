// Package session walks a user through one deck's review queue.
//
// The queue is a snapshot taken when the session starts. Submitting a grade
// reschedules the card in the store but never changes the queue, so a card
// reviewed early in the session cannot come back or reorder what is left.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
)

// Reviewer is the part of the study service a session needs.
type Reviewer interface {
	DueCards(ctx context.Context, deckID string) ([]domain.Card, error)
	OverLearnCards(ctx context.Context, deckID string) ([]domain.Card, error)
	SubmitReview(ctx context.Context, cardID string, g domain.Grade, responseTime time.Duration) (srs.State, error)
}

// Mode says which set the queue was taken from.
type Mode int

const (
	ModeDue Mode = iota
	ModeOverLearn
)

func (m Mode) String() string {
	if m == ModeOverLearn {
		return "over-learn"
	}
	return "due"
}

var (
	// ErrDone is returned when grading or skipping past the end of the queue.
	ErrDone = errors.New("session: no cards left")
	// ErrNotDone is returned when switching to over-learning with cards
	// still in the queue.
	ErrNotDone = errors.New("session: cards left in queue")
	// ErrNotCurrent is returned when advancing past a card that is not the
	// current one.
	ErrNotCurrent = errors.New("session: not the current card")
)

// Summary counts what happened in a session. Failing grades are counted
// under domain.Again.
type Summary struct {
	Mode     Mode
	Total    int
	Reviewed int
	Skipped  int
	Grades   map[domain.Grade]int
}

// Session is a queue over a snapshot of a deck's cards. It is not safe for
// concurrent use, except that Submit and OverLearnCards never touch the
// queue and may run alongside readers.
type Session struct {
	reviewer Reviewer
	deckID   string
	mode     Mode
	queue    []domain.Card
	pos      int
	skipped  int
	grades   map[domain.Grade]int
}

// New starts a session over the cards of deckID that are due now.
func New(ctx context.Context, r Reviewer, deckID string) (*Session, error) {
	cards, err := r.DueCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	s := &Session{
		reviewer: r,
		deckID:   deckID,
		mode:     ModeDue,
	}
	s.reset(cards)
	return s, nil
}

func (s *Session) reset(cards []domain.Card) {
	s.queue = append([]domain.Card(nil), cards...)
	s.pos = 0
	s.skipped = 0
	s.grades = make(map[domain.Grade]int)
}

func (s *Session) DeckID() string { return s.deckID }

func (s *Session) Mode() Mode { return s.mode }

// Current returns the card to show, or false once the queue is exhausted.
func (s *Session) Current() (domain.Card, bool) {
	if s.Done() {
		return domain.Card{}, false
	}
	return s.queue[s.pos], true
}

// Position returns the zero-based index of the current card and the queue
// length.
func (s *Session) Position() (index, total int) {
	return s.pos, len(s.queue)
}

// Done reports whether every card in the queue has been graded or skipped.
// An empty queue is done from the start.
func (s *Session) Done() bool {
	return s.pos >= len(s.queue)
}

// Grade submits g for the current card and moves to the next one. The
// session stays on the same card if the submission fails.
func (s *Session) Grade(ctx context.Context, g domain.Grade, responseTime time.Duration) (srs.State, error) {
	card, ok := s.Current()
	if !ok {
		return srs.State{}, ErrDone
	}
	st, err := s.Submit(ctx, card.ID, g, responseTime)
	if err != nil {
		return srs.State{}, err
	}
	return st, s.Advance(card.ID, g)
}

// Submit sends a review of cardID without touching the queue, so it may run
// on another goroutine while the session is read. Follow a successful
// Submit with Advance.
func (s *Session) Submit(ctx context.Context, cardID string, g domain.Grade, responseTime time.Duration) (srs.State, error) {
	return s.reviewer.SubmitReview(ctx, cardID, g, responseTime)
}

// Advance records g for the current card, which must be cardID, and moves
// to the next one.
func (s *Session) Advance(cardID string, g domain.Grade) error {
	card, ok := s.Current()
	if !ok {
		return ErrDone
	}
	if card.ID != cardID {
		return fmt.Errorf("%w: current card is %s, not %s", ErrNotCurrent, card.ID, cardID)
	}
	if g.Failed() {
		g = domain.Again
	}
	s.grades[g]++
	s.pos++
	return nil
}

// Skip moves past the current card without reviewing it.
func (s *Session) Skip() error {
	if s.Done() {
		return ErrDone
	}
	s.skipped++
	s.pos++
	return nil
}

// SwitchToOverLearn replaces the finished queue with a snapshot of the
// deck's cards that are not yet due, soonest first.
func (s *Session) SwitchToOverLearn(ctx context.Context) error {
	if !s.Done() {
		return ErrNotDone
	}
	cards, err := s.OverLearnCards(ctx)
	if err != nil {
		return err
	}
	return s.StartOverLearn(cards)
}

// OverLearnCards loads the deck's not yet due cards without touching the
// queue.
func (s *Session) OverLearnCards(ctx context.Context) ([]domain.Card, error) {
	return s.reviewer.OverLearnCards(ctx, s.deckID)
}

// StartOverLearn replaces the finished queue with cards.
func (s *Session) StartOverLearn(cards []domain.Card) error {
	if !s.Done() {
		return ErrNotDone
	}
	s.mode = ModeOverLearn
	s.reset(cards)
	return nil
}

// Summary reports the current queue's progress.
func (s *Session) Summary() Summary {
	grades := make(map[domain.Grade]int, len(s.grades))
	reviewed := 0
	for g, n := range s.grades {
		grades[g] = n
		reviewed += n
	}
	return Summary{
		Mode:     s.mode,
		Total:    len(s.queue),
		Reviewed: reviewed,
		Skipped:  s.skipped,
		Grades:   grades,
	}
}
