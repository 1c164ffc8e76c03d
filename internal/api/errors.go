package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// respondStoreError maps a store error to its status code and writes the
// error response. notFoundMessage overrides the generic message for the
// 404 case so handlers can name the missing id.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusNotFound && notFoundMessage != "" {
		message = notFoundMessage
	}
	shared.RespondWithError(w, r, status, message)
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type, for cases where the handler has no more
// specific message of its own.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrOrderNotFound):
		return "Order not found"

	default:
		return "An unexpected error occurred"
	}
}
