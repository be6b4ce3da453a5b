package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/store"
)

var errBadRequest = errors.New("malformed request")

// statusOf maps an error to the HTTP status reported to clients.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, generator.ErrInvalidTileType),
		errors.Is(err, generator.ErrInvalidFigureSize),
		errors.Is(err, generator.ErrInvalidPiecesAmount),
		errors.Is(err, generator.ErrTooManyPieces),
		errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorReply(err error) ReplyEnvelope {
	return ReplyEnvelope{Type: TypeError, Error: errorBody(err)}
}

// errorBody hides internal error detail from clients.
func errorBody(err error) *ErrorBody {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	return &ErrorBody{Status: status, Message: msg}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	body := errorBody(err)
	if body.Status == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.Any("error", err))
	}
	writeJSON(w, body.Status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
