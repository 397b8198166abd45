package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/conorfennell/memora/internal/study"
)

// maxBodyBytes bounds request bodies, including deck imports.
const maxBodyBytes = 4 << 20

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("response-encode-failed")
	}
}

func statusOf(kind study.Kind) int {
	switch kind {
	case study.KindUnauthenticated:
		return http.StatusUnauthorized
	case study.KindNotFound:
		return http.StatusNotFound
	case study.KindInvalid:
		return http.StatusBadRequest
	case study.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status for err's kind. Storage failures are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := study.KindOf(err)
	status := statusOf(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request-failed")
		msg = "internal error"
	}
	writeJSON(w, r, status, errorBody{Error: msg, Kind: kind.String()})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, http.StatusBadRequest, errorBody{
		Error: err.Error(),
		Kind:  study.KindInvalid.String(),
	})
}

// decode reads a JSON request body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body larger than %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
