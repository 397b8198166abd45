// Package web serves the study service as a JSON API.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/conorfennell/memora/internal/content"
	"github.com/conorfennell/memora/internal/study"
	"github.com/conorfennell/memora/internal/sync"
)

const GracefulShutdownTimeout = 10 * time.Second

// Server holds the dependencies for the HTTP server.
type Server struct {
	svc      *study.Service
	syncer   *sync.Syncer
	renderer *content.Renderer
	secret   []byte
	logger   zerolog.Logger
	handler  http.Handler
}

// NewServer returns a server for svc. API requests must carry a bearer
// token signed with secret. Source routes are only served when syncer is
// not nil.
func NewServer(svc *study.Service, syncer *sync.Syncer, renderer *content.Renderer, secret []byte) *Server {
	s := &Server{
		svc:      svc,
		syncer:   syncer,
		renderer: renderer,
		secret:   secret,
		logger:   log.Logger,
	}
	s.handler = s.routes()
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/decks", s.handleListDecks)
	api.HandleFunc("POST /api/decks", s.handleCreateDeck)
	api.HandleFunc("POST /api/decks/import", s.handleImportDeck)
	api.HandleFunc("PATCH /api/decks/{id}", s.handleRenameDeck)
	api.HandleFunc("DELETE /api/decks/{id}", s.handleDeleteDeck)
	api.HandleFunc("GET /api/decks/{id}/cards", s.handleListCards)
	api.HandleFunc("POST /api/decks/{id}/cards", s.handleAddCard)
	api.HandleFunc("GET /api/decks/{id}/due", s.handleDueCards)
	api.HandleFunc("GET /api/decks/{id}/overlearn", s.handleOverLearnCards)
	api.HandleFunc("GET /api/decks/{id}/tags", s.handleDeckTags)
	api.HandleFunc("POST /api/decks/{id}/import", s.handleMergeDeck)

	api.HandleFunc("GET /api/cards/{id}", s.handleGetCard)
	api.HandleFunc("PATCH /api/cards/{id}", s.handleUpdateCard)
	api.HandleFunc("DELETE /api/cards/{id}", s.handleDeleteCard)
	api.HandleFunc("GET /api/cards/{id}/preview", s.handlePreview)
	api.HandleFunc("POST /api/cards/{id}/review", s.handleReview)
	api.HandleFunc("GET /api/cards/{id}/history", s.handleHistory)

	if s.syncer != nil {
		api.HandleFunc("GET /api/sources", s.handleListSources)
		api.HandleFunc("POST /api/sources", s.handleAddSource)
		api.HandleFunc("DELETE /api/sources", s.handleRemoveSource)
		api.HandleFunc("POST /api/sync", s.handleSync)
	}

	logged := alice.New(
		hlog.NewHandler(s.logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
		hlog.RemoteAddrHandler("ip"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
	)

	root := http.NewServeMux()
	root.Handle("GET /healthz", logged.ThenFunc(s.handleHealth))
	root.Handle("/api/", logged.Append(s.authenticate).Then(api))
	return root
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		log.Info().Msg("got quit signal...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Err(err).Msg("http-server-shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", addr).Msg("http-server-listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
	return nil
}
