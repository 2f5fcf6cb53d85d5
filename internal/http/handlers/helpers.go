package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/matchmaking"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// maxBodyBytes bounds the size of function request bodies.
const maxBodyBytes = 1 << 20

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes body before writing the header, so an unencodable body becomes a 500.
func writeJSON(w http.ResponseWriter, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "internal server error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// statusFor maps domain errors to a response status and a message safe to show callers.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, matchmaking.ErrInvalidParams),
		errors.Is(err, rating.ErrWinnerNotInMatch),
		errors.Is(err, rating.ErrTiedScore):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, challenge.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, matchmaking.ErrPlayerNotFound),
		errors.Is(err, profile.ErrNotFound),
		errors.Is(err, badge.ErrUserNotFound),
		errors.Is(err, rating.ErrMatchNotFound),
		errors.Is(err, challenge.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, rating.ErrAlreadyRated),
		errors.Is(err, rating.ErrMatchCompleted),
		errors.Is(err, rating.ErrWinnerMismatch),
		errors.Is(err, challenge.ErrNotPending):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondWithError logs err on the request logger and writes the mapped error response.
func respondWithError(w http.ResponseWriter, r *http.Request, err error, msg string, keyvals ...any) {
	logger := log.FromContext(r.Context())
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, append([]any{"error", err}, keyvals...)...)
	} else {
		logger.Warn(msg, append([]any{"error", err, "status", status}, keyvals...)...)
	}
	writeError(w, status, message)
}
