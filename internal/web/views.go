package web

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/conorfennell/memora/internal/domain"
	"github.com/conorfennell/memora/internal/srs"
)

type cardView struct {
	ID          string        `json:"id"`
	DeckID      string        `json:"deckId"`
	Front       string        `json:"front"`
	Back        string        `json:"back"`
	FrontHTML   string        `json:"frontHtml"`
	BackHTML    string        `json:"backHtml"`
	Tags        []string      `json:"tags"`
	Interval    float64       `json:"interval"`
	Label       string        `json:"intervalLabel"`
	Repetitions int           `json:"repetitions"`
	NextReview  time.Time     `json:"nextReview"`
	EaseFactor  float64       `json:"easeFactor"`
	LastReview  *time.Time    `json:"lastReview,omitempty"`
	LastGrade   *domain.Grade `json:"lastGrade,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Version     int64         `json:"version"`
	FromSource  bool          `json:"fromSource"`
}

// render returns sanitized HTML for card text. Text that fails to render
// is left out rather than sent unsanitized.
func (s *Server) render(r *http.Request, cardID, text string) string {
	html, err := s.renderer.Render(text)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("card", cardID).Msg("card-render-failed")
		return ""
	}
	return html
}

func (s *Server) cardView(r *http.Request, c domain.Card) cardView {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return cardView{
		ID:          c.ID,
		DeckID:      c.DeckID,
		Front:       c.Front,
		Back:        c.Back,
		FrontHTML:   s.render(r, c.ID, c.Front),
		BackHTML:    s.render(r, c.ID, c.Back),
		Tags:        tags,
		Interval:    c.Interval,
		Label:       srs.FormatInterval(c.Interval),
		Repetitions: c.Repetitions,
		NextReview:  c.NextReview,
		EaseFactor:  c.EaseFactor,
		LastReview:  c.LastReview,
		LastGrade:   c.LastGrade,
		CreatedAt:   c.CreatedAt,
		Version:     c.Version,
		FromSource:  c.SourceID != nil,
	}
}

func (s *Server) cardViews(r *http.Request, cards []domain.Card) []cardView {
	out := make([]cardView, len(cards))
	for i, c := range cards {
		out[i] = s.cardView(r, c)
	}
	return out
}

type deckView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CardCount    int        `json:"cardCount"`
	DueCount     *int       `json:"dueCount,omitempty"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func newDeckView(d domain.Deck) deckView {
	return deckView{
		ID:           d.ID,
		Name:         d.Name,
		CardCount:    d.CardCount,
		LastReviewed: d.LastReviewed,
		CreatedAt:    d.CreatedAt,
	}
}

type reviewEventView struct {
	ID               string       `json:"id"`
	Grade            domain.Grade `json:"grade"`
	Timestamp        time.Time    `json:"timestamp"`
	ResponseTimeMs   int64        `json:"responseTimeMs"`
	PreviousInterval float64      `json:"previousInterval"`
	NewInterval      float64      `json:"newInterval"`
}

func newReviewEventView(ev domain.ReviewEvent) reviewEventView {
	return reviewEventView{
		ID:               ev.ID,
		Grade:            ev.Grade,
		Timestamp:        ev.Timestamp,
		ResponseTimeMs:   ev.ResponseTime.Milliseconds(),
		PreviousInterval: ev.PreviousInterval,
		NewInterval:      ev.NewInterval,
	}
}

type sourceView struct {
	ID          int64             `json:"id"`
	Path        string            `json:"path"`
	Type        domain.SourceType `json:"type"`
	LastScanned *time.Time        `json:"lastScanned,omitempty"`
}
