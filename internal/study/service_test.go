package study

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type FakeNower struct{ fakenow time.Time }

func (f *FakeNower) Now() time.Time {
	return f.fakenow
}

func (f *FakeNower) Advance(d time.Duration) {
	f.fakenow = f.fakenow.Add(d)
}

func newTestService(t *testing.T) (*Service, *storage.SQLite, *FakeNower) {
	t.Helper()
	db, err := storage.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewService(db, srs.DefaultConfig())
	require.NoError(t, err)
	nower := &FakeNower{fakenow: t0}
	s.Nower = nower
	return s, db, nower
}

func userCtx(id string) context.Context {
	return auth.StoreUserInContext(context.Background(), id)
}

func TestSubmitReviewScenario(t *testing.T) {
	s, db, nower := newTestService(t)
	ctx := userCtx("u1")

	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)
	card, err := s.AddCard(ctx, deck.ID, domain.Content{Front: "hola", Back: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, card.Interval)
	assert.Equal(t, t0, card.NextReview)

	st, err := s.SubmitReview(ctx, card.ID, domain.Good, 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1.0/24, st.Interval)
	assert.Equal(t, 1, st.Repetitions)
	assert.Equal(t, t0.Add(time.Hour), st.NextReview)

	stored, err := db.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/24, stored.Interval, 1e-12)
	assert.Equal(t, 1, stored.Repetitions)
	assert.Equal(t, int64(1), stored.Version)
	require.NotNil(t, stored.LastGrade)
	assert.Equal(t, domain.Good, *stored.LastGrade)
	require.NotNil(t, stored.LastReview)
	assert.True(t, t0.Equal(*stored.LastReview))

	d, err := db.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	require.NotNil(t, d.LastReviewed)
	assert.True(t, t0.Equal(*d.LastReviewed))

	nower.Advance(time.Hour)
	st, err = s.SubmitReview(ctx, card.ID, domain.Good, time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/12, st.Interval, 1e-12)
	assert.Equal(t, 2, st.Repetitions)
	assert.True(t, t0.Add(3*time.Hour).Equal(st.NextReview))

	nower.Advance(2 * time.Hour)
	st, err = s.SubmitReview(ctx, card.ID, domain.Again, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0.0, st.Interval)
	assert.Equal(t, 0, st.Repetitions)
	assert.True(t, nower.Now().Equal(st.NextReview))

	events, err := s.ReviewHistory(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.Again, events[0].Grade)
	assert.InDelta(t, 1.0/12, events[0].PreviousInterval, 1e-12)
	assert.Equal(t, 0.0, events[0].NewInterval)
	assert.Equal(t, 0.0, events[2].PreviousInterval)
	assert.Equal(t, 3*time.Second, events[2].ResponseTime)
}

func TestSubmitReviewPreconditions(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)
	card, err := s.AddCard(ctx, deck.ID, domain.Content{Front: "hola", Back: "hello"})
	require.NoError(t, err)

	_, err = s.SubmitReview(context.Background(), card.ID, domain.Good, 0)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = s.SubmitReview(ctx, card.ID, domain.Grade(6), 0)
	assert.Equal(t, KindInvalid, KindOf(err))
	assert.ErrorIs(t, err, domain.ErrInvalidGrade)

	_, err = s.SubmitReview(ctx, "missing", domain.Good, 0)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.ErrorIs(t, err, ErrCardNotFound)

	// Another user's card looks missing.
	_, err = s.SubmitReview(userCtx("u2"), card.ID, domain.Good, 0)
	assert.Equal(t, KindNotFound, KindOf(err))

	// None of the rejected calls changed the card.
	got, err := s.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Version)
	assert.Nil(t, got.LastGrade)
}

func TestPreviewDoesNotMutate(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)
	card, err := s.AddCard(ctx, deck.ID, domain.Content{Front: "hola", Back: "hello"})
	require.NoError(t, err)

	st, err := s.PreviewReview(ctx, card.ID, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.Interval)

	previews, err := s.PreviewAll(ctx, card.ID)
	require.NoError(t, err)
	labels := make([]string, 0, len(previews))
	for _, p := range previews {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"< 1m", "15m", "1h", "1d"}, labels)

	got, err := s.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Version)
	assert.Equal(t, 0.0, got.Interval)

	events, err := s.ReviewHistory(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDueAndOverLearn(t *testing.T) {
	s, db, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)

	mk := func(id string, interval float64, next time.Time, created time.Time) domain.Card {
		c := domain.NewCard(id, deck.ID, "u1", domain.Content{Front: id, Back: id}, created)
		c.Interval = interval
		c.NextReview = next
		return c
	}
	require.NoError(t, db.CreateCards(ctx, []domain.Card{
		mk("new", 0, t0, t0.Add(-4*time.Hour)),
		mk("overdue", 3, t0.Add(-time.Hour), t0.Add(-3*time.Hour)),
		// 10 day interval, due in 2 days: inside the 2 day early window.
		mk("early", 10, t0.Add(48*time.Hour), t0.Add(-2*time.Hour)),
		mk("later", 10, t0.Add(5*24*time.Hour), t0.Add(-time.Hour)),
		mk("soon", 1, t0.Add(6*time.Hour), t0),
	}))

	due, err := s.DueCards(ctx, deck.ID)
	require.NoError(t, err)
	// Listing order is newest first.
	assert.Equal(t, []string{"early", "overdue", "new"}, cardIDs(due))

	n, err := s.DueCardCount(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	over, err := s.OverLearnCards(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"soon", "later"}, cardIDs(over))

	_, err = s.DueCards(userCtx("u2"), deck.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func cardIDs(cards []domain.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestDeckNames(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")

	deck, err := s.CreateDeck(ctx, "  Spanish  ")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", deck.Name)

	_, err = s.CreateDeck(ctx, "SPANISH")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.ErrorIs(t, err, ErrDuplicateDeck)

	for _, name := range []string{"", "   ", strings.Repeat("x", domain.MaxDeckNameLength+1)} {
		_, err = s.CreateDeck(ctx, name)
		assert.Equal(t, KindInvalid, KindOf(err), "name %q", name)
		assert.ErrorIs(t, err, ErrInvalidDeckName)
	}

	name, err := s.UniqueDeckName(ctx, "French")
	require.NoError(t, err)
	assert.Equal(t, "French", name)

	name, err = s.UniqueDeckName(ctx, "spanish")
	require.NoError(t, err)
	assert.Equal(t, "spanish (1)", name)

	_, err = s.CreateDeck(ctx, "Spanish (1)")
	require.NoError(t, err)
	name, err = s.UniqueDeckName(ctx, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Spanish (2)", name)

	other, err := s.CreateDeck(ctx, "German")
	require.NoError(t, err)
	_, err = s.RenameDeck(ctx, other.ID, "spanish")
	assert.ErrorIs(t, err, ErrDuplicateDeck)
	renamed, err := s.RenameDeck(ctx, other.ID, "Deutsch")
	require.NoError(t, err)
	assert.Equal(t, "Deutsch", renamed.Name)

	_, err = s.RenameDeck(userCtx("u2"), other.ID, "Mine")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCardCountAndDeleteDeck(t *testing.T) {
	s, db, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)

	var ids []string
	for _, front := range []string{"uno", "dos", "tres"} {
		c, err := s.AddCard(ctx, deck.ID, domain.Content{Front: front, Back: front})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	require.NoError(t, s.DeleteCard(ctx, ids[0]))

	got, err := s.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CardCount)

	cards, err := s.ListCards(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, cards, got.CardCount)

	_, err = s.SubmitReview(ctx, ids[1], domain.Easy, 0)
	require.NoError(t, err)

	require.NoError(t, s.DeleteDeck(ctx, deck.ID))
	_, err = s.GetDeck(ctx, deck.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	_, err = db.GetCard(ctx, ids[1])
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// The review log outlives the deck.
	events, err := db.ListReviews(ctx, ids[1])
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestCardContent(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Spanish")
	require.NoError(t, err)

	_, err = s.AddCard(ctx, deck.ID, domain.Content{Front: "  ", Back: "b"})
	assert.Equal(t, KindInvalid, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = s.AddCard(ctx, deck.ID, domain.Content{Front: strings.Repeat("é", 501), Back: "b"})
	assert.Equal(t, KindInvalid, KindOf(err))

	card, err := s.AddCard(ctx, deck.ID, domain.Content{Front: " hola ", Back: "hello", Tags: []string{"b", "a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "hola", card.Front)
	assert.Equal(t, []string{"b", "a"}, card.Tags)

	_, err = s.SubmitReview(ctx, card.ID, domain.Good, 0)
	require.NoError(t, err)

	updated, err := s.UpdateCardContent(ctx, card.ID, domain.Content{Front: "buenos días", Back: "good morning", Tags: []string{"c"}})
	require.NoError(t, err)
	assert.Equal(t, "buenos días", updated.Front)
	assert.InDelta(t, 1.0/24, updated.Interval, 1e-12)

	_, err = s.AddCard(ctx, deck.ID, domain.Content{Front: "adiós", Back: "bye", Tags: []string{"a"}})
	require.NoError(t, err)
	tags, err := s.DeckTags(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, tags)

	err = s.DeleteCard(userCtx("u2"), card.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestImportDeck(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	_, err := s.CreateDeck(ctx, "Capitals")
	require.NoError(t, err)

	deck, err := s.ImportDeck(ctx, "Capitals", []domain.Content{
		{Front: "France", Back: "Paris"},
		{Front: "Spain", Back: "Madrid", Tags: []string{"europe"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Capitals (1)", deck.Name)
	assert.Equal(t, 2, deck.CardCount)

	due, err := s.DueCards(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, due, 2)

	_, err = s.ImportDeck(ctx, "Broken", []domain.Content{{Front: "ok", Back: "ok"}, {Front: "", Back: "missing"}})
	assert.Equal(t, KindInvalid, KindOf(err))
	assert.Contains(t, err.Error(), "card 2")

	_, err = s.ImportDeck(ctx, "Empty", nil)
	assert.Equal(t, KindInvalid, KindOf(err))

	decks, err := s.ListDecks(ctx)
	require.NoError(t, err)
	assert.Len(t, decks, 2)
}

func TestImportDeckLongTakenName(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	base := strings.Repeat("é", domain.MaxDeckNameLength)
	_, err := s.CreateDeck(ctx, base)
	require.NoError(t, err)

	deck, err := s.ImportDeck(ctx, base, []domain.Content{{Front: "a", Back: "b"}})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", domain.MaxDeckNameLength-4)+" (1)", deck.Name)
	assert.Len(t, []rune(deck.Name), domain.MaxDeckNameLength)

	deck, err = s.ImportDeck(ctx, base, []domain.Content{{Front: "a", Back: "b"}})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", domain.MaxDeckNameLength-4)+" (2)", deck.Name)
}

func TestUniqueNameTrimsBeforeSuffix(t *testing.T) {
	base := strings.Repeat("x", 95) + "   yz"
	decks := []domain.Deck{{Name: base}}
	assert.Equal(t, strings.Repeat("x", 95)+" (1)", uniqueName(base, decks))
	assert.Equal(t, "short (1)", uniqueName("short", []domain.Deck{{Name: "SHORT"}}))
}

func TestMergeIntoDeck(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx("u1")
	deck, err := s.CreateDeck(ctx, "Capitals")
	require.NoError(t, err)
	_, err = s.AddCard(ctx, deck.ID, domain.Content{Front: "France", Back: "Paris"})
	require.NoError(t, err)

	merged, err := s.MergeIntoDeck(ctx, deck.ID, []domain.Content{
		{Front: "Spain", Back: "Madrid"},
		{Front: "Italy", Back: "Rome"},
	})
	require.NoError(t, err)
	assert.Equal(t, deck.ID, merged.ID)
	assert.Equal(t, "Capitals", merged.Name)
	assert.Equal(t, 3, merged.CardCount)

	_, err = s.MergeIntoDeck(ctx, deck.ID, []domain.Content{{Front: "ok", Back: "ok"}, {Front: "x"}})
	assert.Equal(t, KindInvalid, KindOf(err))
	cards, err := s.ListCards(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	_, err = s.MergeIntoDeck(userCtx("u2"), deck.ID, []domain.Content{{Front: "a", Back: "b"}})
	assert.Equal(t, KindNotFound, KindOf(err))
	_, err = s.MergeIntoDeck(context.Background(), deck.ID, []domain.Content{{Front: "a", Back: "b"}})
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, KindStorage, KindOf(errors.New("boom")))
	err := storeError("Op", fmt.Errorf("card c1: %w", storage.ErrConflict), ErrCardNotFound)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.Equal(t, "conflict", KindConflict.String())
}
