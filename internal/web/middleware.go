package web

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/conorfennell/memora/internal/auth"
	"github.com/conorfennell/memora/internal/study"
)

// authenticate rejects requests without a valid bearer token and puts the
// token's user in the request context.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := auth.AuthenticateRequest(r.Context(), r.Header, s.secret)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("unauthenticated-request")
			w.Header().Set("WWW-Authenticate", `Bearer realm="memora"`)
			writeJSON(w, r, http.StatusUnauthorized, errorBody{
				Error: err.Error(),
				Kind:  study.KindUnauthenticated.String(),
			})
			return
		}
		user := auth.UserFromContext(ctx)
		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user", user.ID)
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
