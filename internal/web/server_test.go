package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/content"
	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
	"github.com/conorfennell/memora/internal/study"
	"github.com/conorfennell/memora/internal/sync"
)

var (
	t0     = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	secret = []byte("0123456789abcdef0123456789abcdef")
)

type FakeNower struct{ fakenow time.Time }

func (f FakeNower) Now() time.Time {
	return f.fakenow
}

type testServer struct {
	t   *testing.T
	srv *Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	is := is.New(t)
	db, err := storage.OpenSQLite(context.Background(), ":memory:")
	is.NoErr(err)
	t.Cleanup(func() { db.Close() })

	svc, err := study.NewService(db, srs.DefaultConfig())
	is.NoErr(err)
	svc.Nower = FakeNower{fakenow: t0}

	syncer, err := sync.NewSyncer(db, nil, t.TempDir())
	is.NoErr(err)

	return &testServer{t: t, srv: NewServer(svc, syncer, content.NewRenderer(), secret)}
}

func (ts *testServer) token(userID string) string {
	tok, err := auth.MintToken(secret, userID, time.Now(), time.Hour)
	if err != nil {
		ts.t.Fatal(err)
	}
	return tok
}

// do sends a request as userID (no token when empty) and decodes the JSON
// response into out when out is not nil.
func (ts *testServer) do(userID, method, path string, body any, out any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			ts.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token(userID))
	}
	rec := httptest.NewRecorder()
	ts.srv.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			ts.t.Fatalf("decoding %s: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func TestHealthNeedsNoToken(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)
	var body map[string]string
	rec := ts.do("", http.MethodGet, "/healthz", nil, &body)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(body["status"], "ok")
}

func TestAPIRequiresToken(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	var e errorBody
	rec := ts.do("", http.MethodGet, "/api/decks", nil, &e)
	is.Equal(rec.Code, http.StatusUnauthorized)
	is.Equal(e.Kind, "unauthenticated")

	req := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	ts.srv.ServeHTTP(rec, req)
	is.Equal(rec.Code, http.StatusUnauthorized)
}

func TestReviewFlow(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	var deck deckView
	rec := ts.do("u1", http.MethodPost, "/api/decks", deckRequest{Name: "Spanish"}, &deck)
	is.Equal(rec.Code, http.StatusCreated)
	is.Equal(deck.Name, "Spanish")

	var card cardView
	rec = ts.do("u1", http.MethodPost, "/api/decks/"+deck.ID+"/cards",
		map[string]any{"front": "**hola**", "back": "hello", "tags": []string{"greeting"}}, &card)
	is.Equal(rec.Code, http.StatusCreated)
	is.Equal(card.FrontHTML, "<p><strong>hola</strong></p>")
	is.True(card.NextReview.Equal(t0))

	var due []cardView
	rec = ts.do("u1", http.MethodGet, "/api/decks/"+deck.ID+"/due", nil, &due)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(len(due), 1)

	var previews []study.GradePreview
	rec = ts.do("u1", http.MethodGet, "/api/cards/"+card.ID+"/preview", nil, &previews)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(len(previews), 4)
	is.Equal(previews[2].Label, "1h")

	var res reviewResponse
	rec = ts.do("u1", http.MethodPost, "/api/cards/"+card.ID+"/review",
		map[string]any{"grade": "good", "responseTimeMs": 1500}, &res)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(res.Repetitions, 1)
	is.Equal(res.IntervalLabel, "1h")
	is.True(res.NextReview.Equal(t0.Add(time.Hour)))

	// Numeric grades are accepted too.
	rec = ts.do("u1", http.MethodPost, "/api/cards/"+card.ID+"/review",
		map[string]any{"grade": 0}, &res)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(res.Repetitions, 0)

	var history []reviewEventView
	rec = ts.do("u1", http.MethodGet, "/api/cards/"+card.ID+"/history", nil, &history)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(len(history), 2)
	is.Equal(history[1].ResponseTimeMs, int64(1500))

	var tags []string
	ts.do("u1", http.MethodGet, "/api/decks/"+deck.ID+"/tags", nil, &tags)
	is.Equal(tags, []string{"greeting"})

	var decks []deckView
	ts.do("u1", http.MethodGet, "/api/decks", nil, &decks)
	is.Equal(len(decks), 1)
	is.Equal(decks[0].CardCount, 1)
	is.True(decks[0].DueCount != nil)
	is.True(decks[0].LastReviewed != nil)
}

func TestErrorKinds(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	var deck deckView
	ts.do("u1", http.MethodPost, "/api/decks", deckRequest{Name: "French"}, &deck)

	var e errorBody
	rec := ts.do("u1", http.MethodPost, "/api/decks", deckRequest{Name: "french"}, &e)
	is.Equal(rec.Code, http.StatusConflict)
	is.Equal(e.Kind, "conflict")

	rec = ts.do("u1", http.MethodPost, "/api/decks", deckRequest{Name: "  "}, &e)
	is.Equal(rec.Code, http.StatusBadRequest)
	is.Equal(e.Kind, "invalid")

	// Another user's deck does not exist for u2.
	rec = ts.do("u2", http.MethodGet, "/api/decks/"+deck.ID+"/cards", nil, &e)
	is.Equal(rec.Code, http.StatusNotFound)
	is.Equal(e.Kind, "not_found")

	rec = ts.do("u1", http.MethodPost, "/api/cards/missing/review", map[string]any{"grade": "good"}, &e)
	is.Equal(rec.Code, http.StatusNotFound)

	rec = ts.do("u1", http.MethodPost, "/api/cards/missing/review", map[string]any{"grade": "great"}, &e)
	is.Equal(rec.Code, http.StatusBadRequest)

	rec = ts.do("u1", http.MethodPost, "/api/decks", map[string]any{"title": "x"}, &e)
	is.Equal(rec.Code, http.StatusBadRequest)
}

func TestRenameAndDelete(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	var deck deckView
	ts.do("u1", http.MethodPost, "/api/decks", deckRequest{Name: "Old"}, &deck)
	var card cardView
	ts.do("u1", http.MethodPost, "/api/decks/"+deck.ID+"/cards", map[string]any{"front": "f", "back": "b"}, &card)

	rec := ts.do("u1", http.MethodPatch, "/api/decks/"+deck.ID, deckRequest{Name: "New"}, &deck)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(deck.Name, "New")

	rec = ts.do("u1", http.MethodPatch, "/api/cards/"+card.ID, map[string]any{"front": "f2", "back": "b2"}, &card)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(card.Front, "f2")

	rec = ts.do("u1", http.MethodDelete, "/api/cards/"+card.ID, nil, nil)
	is.Equal(rec.Code, http.StatusNoContent)
	rec = ts.do("u1", http.MethodDelete, "/api/decks/"+deck.ID, nil, nil)
	is.Equal(rec.Code, http.StatusNoContent)
	rec = ts.do("u1", http.MethodGet, "/api/decks/"+deck.ID+"/cards", nil, nil)
	is.Equal(rec.Code, http.StatusNotFound)
}

func TestImportDeck(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	var deck deckView
	rec := ts.do("u1", http.MethodPost, "/api/decks/import",
		importRequest{Name: "Capitals", Text: "# capitals\nFrance\tParis\nSpain\tMadrid\n"}, &deck)
	is.Equal(rec.Code, http.StatusCreated)
	is.Equal(deck.CardCount, 2)

	rec = ts.do("u1", http.MethodPost, "/api/decks/import",
		importRequest{Name: "Capitals", Text: "Italy,Rome"}, &deck)
	is.Equal(rec.Code, http.StatusCreated)
	is.Equal(deck.Name, "Capitals (1)")

	var e errorBody
	rec = ts.do("u1", http.MethodPost, "/api/decks/import", importRequest{Name: "Empty", Text: "# nothing"}, &e)
	is.Equal(rec.Code, http.StatusBadRequest)

	var merged deckView
	rec = ts.do("u1", http.MethodPost, "/api/decks/"+deck.ID+"/import",
		importRequest{Cards: []domain.Content{{Front: "Japan", Back: "Tokyo"}}, Text: "Peru\tLima\n"}, &merged)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(merged.ID, deck.ID)
	is.Equal(merged.Name, "Capitals (1)")
	is.Equal(merged.CardCount, 3)

	rec = ts.do("u2", http.MethodPost, "/api/decks/"+deck.ID+"/import",
		importRequest{Text: "Peru\tLima\n"}, &e)
	is.Equal(rec.Code, http.StatusNotFound)
}

func TestSourcesAndSync(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t)

	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "go.md"), []byte("Q: Go?\nA: Yes\n"), 0o644))

	rec := ts.do("u1", http.MethodPost, "/api/sources", sourceRequest{Path: dir}, nil)
	is.Equal(rec.Code, http.StatusCreated)
	rec = ts.do("u1", http.MethodPost, "/api/sources", sourceRequest{Path: dir}, nil)
	is.Equal(rec.Code, http.StatusConflict)

	var res syncResponse
	rec = ts.do("u1", http.MethodPost, "/api/sync", nil, &res)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(res.Added, 1)
	is.Equal(len(res.Errors), 0)

	var sources []sourceView
	ts.do("u1", http.MethodGet, "/api/sources", nil, &sources)
	is.Equal(len(sources), 1)
	is.True(sources[0].LastScanned != nil)

	rec = ts.do("u1", http.MethodDelete, "/api/sources?path="+url.QueryEscape(dir), nil, nil)
	is.Equal(rec.Code, http.StatusNoContent)
}
