package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/algotrace/closestpair"
	"github.com/katalvlaran/algotrace/input"
	"github.com/katalvlaran/algotrace/karatsuba"
)

// ErrTooLarge is returned when a request exceeds the configured limits.
var ErrTooLarge = errors.New("httpapi: request exceeds configured limits")

// ErrBadRequest covers bodies that are not the expected JSON or form.
var ErrBadRequest = errors.New("httpapi: malformed request")

type errorBody struct {
	Error string `json:"error"`
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, ErrTooLarge), errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, input.ErrInvalidInput),
		errors.Is(err, karatsuba.ErrInvalidOperand),
		errors.Is(err, closestpair.ErrTooFewPoints),
		errors.Is(err, closestpair.ErrInvalidPoint),
		errors.Is(err, closestpair.ErrDistanceOverflow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and writes it as {"error": "..."}. Internal errors are
// not echoed to the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, algorithm string, err error) {
	status := statusOf(err)
	s.metrics.Error(algorithm)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "error", err)
		msg = http.StatusText(status)
	} else {
		s.log.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, b)
}

func writeRaw(w http.ResponseWriter, status int, b []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
