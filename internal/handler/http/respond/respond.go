// Package respond writes HTTP responses for the forum API.
//
// Success responses carry JSON or only headers. Error responses carry an empty body:
// the status code, plus Allow or Location where applicable, is the whole answer.
// Internal errors are logged with sensitive values masked.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/logging"
)

// Allow header values for the two path shapes.
const (
	AllowCollection = "HEAD, GET, POST"
	AllowItem       = "HEAD, GET, PUT, DELETE"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Created answers 201 with the location of the new resource.
func Created(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// NoContent answers 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entity.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the status for err with an empty body.
// Server errors are logged through the request logger.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusFor(err)
	logger := logging.WithRequestID(r.Context(), logging.FromContext(r.Context()))
	if code >= http.StatusInternalServerError {
		logger.Error("internal server error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	} else {
		logger.Debug("request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", err.Error()))
	}
	w.WriteHeader(code)
}

// Status writes code with an empty body.
func Status(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// NotAllowed answers 405 and lists the supported methods.
func NotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// MethodNotAllowed returns a handler that always answers NotAllowed.
func MethodNotAllowed(allow string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		NotAllowed(w, allow)
	})
}
