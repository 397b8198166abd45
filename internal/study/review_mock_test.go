package study

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/conorfennell/memora/internal/domain"
	mock_storage "github.com/conorfennell/memora/internal/mocks/storage"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
)

func newMockService(t *testing.T) (*Service, *mock_storage.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_storage.NewMockStore(ctrl)
	s, err := NewService(store, srs.DefaultConfig())
	require.NoError(t, err)
	s.Nower = &FakeNower{fakenow: t0}
	s.NewID = func() string { return "ev1" }
	return s, store
}

func reviewedCard() *domain.Card {
	c := domain.NewCard("c1", "d1", "u1", domain.Content{Front: "f", Back: "b"}, t0.Add(-48*time.Hour))
	c.Interval = 2
	c.Repetitions = 3
	c.Version = 7
	return &c
}

func TestSubmitReviewUsesExpectedVersion(t *testing.T) {
	s, store := newMockService(t)
	ctx := userCtx("u1")

	store.EXPECT().GetCard(gomock.Any(), "c1").Return(reviewedCard(), nil)
	store.EXPECT().ApplyReview(gomock.Any(), storage.ReviewUpdate{
		CardID:          "c1",
		DeckID:          "d1",
		ExpectedVersion: 7,
		Interval:        4,
		Repetitions:     4,
		NextReview:      t0.Add(4 * 24 * time.Hour),
		EaseFactor:      domain.DefaultEaseFactor,
		Grade:           domain.Good,
		ReviewedAt:      t0,
	}).Return(nil)
	store.EXPECT().AppendReview(gomock.Any(), domain.ReviewEvent{
		ID:               "ev1",
		CardID:           "c1",
		UserID:           "u1",
		Grade:            domain.Good,
		Timestamp:        t0,
		ResponseTime:     2 * time.Second,
		PreviousInterval: 2,
		NewInterval:      4,
	}).Return(nil)

	st, err := s.SubmitReview(ctx, "c1", domain.Good, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 4.0, st.Interval)
}

func TestSubmitReviewConflict(t *testing.T) {
	s, store := newMockService(t)

	store.EXPECT().GetCard(gomock.Any(), "c1").Return(reviewedCard(), nil)
	store.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("card c1 at version 7: %w", storage.ErrConflict))
	// No review event for a review that was not committed.
	store.EXPECT().AppendReview(gomock.Any(), gomock.Any()).Times(0)

	st, err := s.SubmitReview(userCtx("u1"), "c1", domain.Easy, 0)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, srs.State{}, st)
}

func TestSubmitReviewStorageFailure(t *testing.T) {
	s, store := newMockService(t)

	store.EXPECT().GetCard(gomock.Any(), "c1").Return(reviewedCard(), nil)
	store.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	st, err := s.SubmitReview(userCtx("u1"), "c1", domain.Hard, 0)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, srs.State{}, st)
}

func TestSubmitReviewAppendFailureIsNotFatal(t *testing.T) {
	s, store := newMockService(t)

	store.EXPECT().GetCard(gomock.Any(), "c1").Return(reviewedCard(), nil)
	store.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().AppendReview(gomock.Any(), gomock.Any()).Return(errors.New("log unavailable"))

	st, err := s.SubmitReview(userCtx("u1"), "c1", domain.Hard, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, st.Interval, 1e-12)
	assert.Equal(t, 4, st.Repetitions)
}

func TestSubmitReviewRejectsBeforeReading(t *testing.T) {
	// No store calls are expected: gomock fails the test on any.
	s, _ := newMockService(t)

	_, err := s.SubmitReview(context.Background(), "c1", domain.Good, 0)
	assert.Equal(t, KindUnauthenticated, KindOf(err))

	_, err = s.SubmitReview(userCtx("u1"), "c1", domain.Grade(-1), 0)
	assert.Equal(t, KindInvalid, KindOf(err))

	_, err = s.SubmitReview(userCtx("u1"), "c1", domain.Good, -time.Second)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestImportDeckRemovesDeckWhenCardsFail(t *testing.T) {
	s, store := newMockService(t)
	ctx := userCtx("u1")

	store.EXPECT().ListDecks(gomock.Any(), "u1").Return([]domain.Deck{}, nil)
	store.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CreateCards(gomock.Any(), gomock.Len(1)).Return(errors.New("write failed"))
	store.EXPECT().DeleteDeck(gomock.Any(), "ev1").Return(nil)

	_, err := s.ImportDeck(ctx, "Capitals", []domain.Content{{Front: "France", Back: "Paris"}})
	assert.Equal(t, KindStorage, KindOf(err))
}
