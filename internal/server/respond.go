package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgrid/canvas"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/search"
)

var (
	errBadBody      = errors.New("server: malformed request body")
	errBadQuery     = errors.New("server: invalid query parameter")
	errValidation   = errors.New("server: validation failed")
	errGridTooLarge = errors.New("server: grid exceeds the configured cell limit")
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, errGridTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, errBadBody),
		errors.Is(err, errBadQuery),
		errors.Is(err, errValidation),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrUnknownRole),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, heuristic.ErrUnknownHeuristic),
		errors.Is(err, canvas.ErrBadSize),
		errors.Is(err, render.ErrFrameRange):
		return http.StatusBadRequest

	case errors.Is(err, gridgraph.ErrMissingEndpoint),
		errors.Is(err, gridgraph.ErrMultipleEndpoints),
		errors.Is(err, search.ErrHeuristicRequired),
		errors.Is(err, search.ErrHeuristicNotAllowed),
		errors.Is(err, canvas.ErrNotReady):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("Request error",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		msg = http.StatusText(status)
	}
	s.writeJSON(w, r, status, ErrorResponse{Error: msg, RequestID: RequestIDFrom(r.Context())})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	s.encode(w, r, status, v)
}

func (s *Server) encode(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
}

// formatValidationError converts validator errors into one errValidation.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", errValidation, strings.Join(msgs, "; "))
}
