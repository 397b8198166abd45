package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/parser"
	"github.com/conorfennell/memora/internal/srs"
	"github.com/conorfennell/memora/internal/storage"
)

type deckRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.svc.ListDecks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]deckView, len(decks))
	for i, d := range decks {
		views[i] = newDeckView(d)
		due, err := s.svc.DueCardCount(r.Context(), d.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		views[i].DueCount = &due
	}
	writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := decode(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	deck, err := s.svc.CreateDeck(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, newDeckView(*deck))
}

func (s *Server) handleRenameDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := decode(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	deck, err := s.svc.RenameDeck(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newDeckView(*deck))
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteDeck(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importRequest carries either parsed cards or the text of a tab or comma
// separated file.
type importRequest struct {
	Name  string           `json:"name"`
	Cards []domain.Content `json:"cards"`
	Text  string           `json:"text"`
}

func (s *Server) handleImportDeck(w http.ResponseWriter, r *http.Request) {
	req, cards, ok := decodeImport(w, r)
	if !ok {
		return
	}
	deck, err := s.svc.ImportDeck(r.Context(), req.Name, cards)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, newDeckView(*deck))
}

// handleMergeDeck adds imported cards to an existing deck. The request's
// name is ignored.
func (s *Server) handleMergeDeck(w http.ResponseWriter, r *http.Request) {
	_, cards, ok := decodeImport(w, r)
	if !ok {
		return
	}
	deck, err := s.svc.MergeIntoDeck(r.Context(), r.PathValue("id"), cards)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newDeckView(*deck))
}

func decodeImport(w http.ResponseWriter, r *http.Request) (importRequest, []domain.Content, bool) {
	var req importRequest
	if err := decode(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return req, nil, false
	}
	cards := req.Cards
	if req.Text != "" {
		parsed, err := parser.ParseDelimited(strings.NewReader(req.Text))
		if err != nil {
			writeBadRequest(w, r, err)
			return req, nil, false
		}
		cards = append(cards, parsed...)
	}
	return req, cards, true
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.svc.ListCards(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.cardViews(r, cards))
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	var c domain.Content
	if err := decode(w, r, &c); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	card, err := s.svc.AddCard(r.Context(), r.PathValue("id"), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, s.cardView(r, *card))
}

func (s *Server) handleDueCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.svc.DueCards(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.cardViews(r, cards))
}

func (s *Server) handleOverLearnCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.svc.OverLearnCards(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.cardViews(r, cards))
}

func (s *Server) handleDeckTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.svc.DeckTags(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tags)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.svc.GetCard(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.cardView(r, *card))
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var c domain.Content
	if err := decode(w, r, &c); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	card, err := s.svc.UpdateCardContent(r.Context(), r.PathValue("id"), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.cardView(r, *card))
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteCard(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	previews, err := s.svc.PreviewAll(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, previews)
}

// reviewRequest takes the grade as a name ("good") or a number, quoted or
// not.
type reviewRequest struct {
	Grade          json.RawMessage `json:"grade"`
	ResponseTimeMs int64           `json:"responseTimeMs"`
}

func (req reviewRequest) grade() (domain.Grade, error) {
	if len(req.Grade) == 0 {
		return 0, fmt.Errorf("%w: missing", domain.ErrInvalidGrade)
	}
	return domain.ParseGrade(strings.Trim(string(req.Grade), `"`))
}

type reviewResponse struct {
	Interval      float64   `json:"interval"`
	IntervalLabel string    `json:"intervalLabel"`
	Repetitions   int       `json:"repetitions"`
	NextReview    time.Time `json:"nextReview"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decode(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	g, err := req.grade()
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}
	rt := time.Duration(req.ResponseTimeMs) * time.Millisecond
	st, err := s.svc.SubmitReview(r.Context(), r.PathValue("id"), g, rt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, reviewResponse{
		Interval:      st.Interval,
		IntervalLabel: srs.FormatInterval(st.Interval),
		Repetitions:   st.Repetitions,
		NextReview:    st.NextReview,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	events, err := s.svc.ReviewHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]reviewEventView, len(events))
	for i, ev := range events {
		views[i] = newReviewEventView(ev)
	}
	writeJSON(w, r, http.StatusOK, views)
}

type sourceRequest struct {
	Path string `json:"path"`
}

// sourceError maps sync and storage errors, which carry no study.Kind.
func sourceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		writeJSON(w, r, http.StatusConflict, errorBody{Error: err.Error(), Kind: "conflict"})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorBody{Error: err.Error(), Kind: "not_found"})
	default:
		writeBadRequest(w, r, err)
	}
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	sources, err := s.syncer.Sources(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]sourceView, len(sources))
	for i, src := range sources {
		views[i] = sourceView{ID: src.ID, Path: src.Path, Type: src.Type, LastScanned: src.LastScanned}
	}
	writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) handleAddSource(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if err := decode(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeBadRequest(w, r, errors.New("path cannot be empty"))
		return
	}
	user := auth.UserFromContext(r.Context())
	src, err := s.syncer.AddSource(r.Context(), user.ID, req.Path)
	if err != nil {
		sourceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, sourceView{ID: src.ID, Path: src.Path, Type: src.Type})
}

func (s *Server) handleRemoveSource(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeBadRequest(w, r, errors.New("path query parameter is required"))
		return
	}
	user := auth.UserFromContext(r.Context())
	if err := s.syncer.RemoveSource(r.Context(), user.ID, path); err != nil {
		sourceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type syncResponse struct {
	Sources int      `json:"sources"`
	Files   int      `json:"files"`
	Added   int      `json:"added"`
	Deleted int      `json:"deleted"`
	Errors  []string `json:"errors"`
}

// handleSync runs a sync in the foreground; the response reports what
// changed.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	report, err := s.syncer.Run(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := syncResponse{
		Sources: report.Sources,
		Files:   report.Files,
		Added:   report.Added,
		Deleted: report.Deleted,
		Errors:  make([]string, len(report.Errors)),
	}
	for i, e := range report.Errors {
		resp.Errors[i] = e.Error()
	}
	writeJSON(w, r, http.StatusOK, resp)
}
