package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError describes a single schema violation in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		TraceID: traceID,
	})
}

// RespondWithValidationError writes the 422 response used whenever a
// payload or parameter violates its schema, carrying per-field detail.
// This failure class stays distinct from 404 lookups so callers can tell
// a bad payload from a missing entity.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, fields []FieldError) {
	traceID := GetTraceID(r.Context())

	slog.LogAttrs(r.Context(), slog.LevelDebug, "request validation failed",
		slog.Int("status_code", http.StatusUnprocessableEntity),
		slog.Any("fields", fields),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "Validation error",
		Fields:  fields,
		TraceID: traceID,
	})
}
