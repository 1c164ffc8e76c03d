package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/orders-api/internal/api/shared"
)

// MessageResponse is the confirmation body returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// getPathInt extracts an integer ID from the URL path parameters.
// A malformed value is reported as a validation failure naming the
// parameter, matching how query parameters are handled.
func getPathInt(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, &shared.FieldsError{Fields: []shared.FieldError{
			{Field: paramName, Message: "is required"},
		}}
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, &shared.FieldsError{Fields: []shared.FieldError{
			{Field: paramName, Message: "must be an integer"},
		}}
	}

	return id, nil
}
