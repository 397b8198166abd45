package study

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
)

// SubmitReview grades a card as the acting user and commits its next
// scheduling state. The card is only updated if nobody else reviewed it
// since it was read; otherwise the error is KindConflict and nothing is
// written. Failing to append the review event is logged, not returned.
func (s *Service) SubmitReview(ctx context.Context, cardID string, g domain.Grade, responseTime time.Duration) (srs.State, error) {
	const op = "SubmitReview"
	user, err := s.actor(ctx, op)
	if err != nil {
		return srs.State{}, err
	}
	if err := s.engine.Policy().Validate(g); err != nil {
		return srs.State{}, invalid(op, err)
	}
	if responseTime < 0 {
		return srs.State{}, invalid(op, errors.New("negative response time"))
	}
	card, err := s.ownedCard(ctx, op, user.ID, cardID)
	if err != nil {
		return srs.State{}, err
	}

	now := s.Nower.Now()
	st, err := s.engine.NextState(*card, g, now)
	if err != nil {
		return srs.State{}, invalid(op, err)
	}

	err = s.store.ApplyReview(ctx, storage.ReviewUpdate{
		CardID:          card.ID,
		DeckID:          card.DeckID,
		ExpectedVersion: card.Version,
		Interval:        st.Interval,
		Repetitions:     st.Repetitions,
		NextReview:      st.NextReview,
		EaseFactor:      st.EaseFactor,
		Grade:           g,
		ReviewedAt:      now,
	})
	if err != nil {
		return srs.State{}, storeError(op, err, ErrCardNotFound)
	}

	log := log.Ctx(ctx)
	ev := domain.ReviewEvent{
		ID:               s.NewID(),
		CardID:           card.ID,
		UserID:           user.ID,
		Grade:            g,
		Timestamp:        now,
		ResponseTime:     responseTime,
		PreviousInterval: card.Interval,
		NewInterval:      st.Interval,
	}
	if err := s.store.AppendReview(ctx, ev); err != nil {
		log.Warn().Err(err).Str("card", card.ID).Msg("review-event-not-recorded")
	}

	log.Debug().Str("card", card.ID).Str("grade", g.String()).
		Float64("interval", st.Interval).
		Time("next-review", st.NextReview).Msg("card-reviewed")
	return st, nil
}

// PreviewReview returns the state SubmitReview would commit for g, without
// writing anything.
func (s *Service) PreviewReview(ctx context.Context, cardID string, g domain.Grade) (srs.State, error) {
	const op = "PreviewReview"
	user, err := s.actor(ctx, op)
	if err != nil {
		return srs.State{}, err
	}
	card, err := s.ownedCard(ctx, op, user.ID, cardID)
	if err != nil {
		return srs.State{}, err
	}
	st, err := s.engine.NextState(*card, g, s.Nower.Now())
	if err != nil {
		return srs.State{}, invalid(op, err)
	}
	return st, nil
}

// GradePreview is what one answer button would do to a card.
type GradePreview struct {
	Grade domain.Grade `json:"grade"`
	State srs.State    `json:"state"`
	// Label is the new interval in human readable form, e.g. "10m" or "4d".
	Label string `json:"label"`
}

// PreviewAll previews every answer button for a card.
func (s *Service) PreviewAll(ctx context.Context, cardID string) ([]GradePreview, error) {
	const op = "PreviewAll"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	card, err := s.ownedCard(ctx, op, user.ID, cardID)
	if err != nil {
		return nil, err
	}
	now := s.Nower.Now()
	previews := make([]GradePreview, 0, len(domain.Grades))
	for _, g := range domain.Grades {
		st, err := s.engine.NextState(*card, g, now)
		if err != nil {
			return nil, invalid(op, err)
		}
		previews = append(previews, GradePreview{Grade: g, State: st, Label: srs.FormatInterval(st.Interval)})
	}
	return previews, nil
}

// ReviewHistory returns a card's review events, newest first.
func (s *Service) ReviewHistory(ctx context.Context, cardID string) ([]domain.ReviewEvent, error) {
	const op = "ReviewHistory"
	user, err := s.actor(ctx, op)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCard(ctx, op, user.ID, cardID); err != nil {
		return nil, err
	}
	events, err := s.store.ListReviews(ctx, cardID)
	if err != nil {
		return nil, storeError(op, err, ErrCardNotFound)
	}
	return events, nil
}
