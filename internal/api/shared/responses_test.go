package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	r := httptest.NewRequest("GET", "/users/99", nil)
	r = r.WithContext(WithTraceID(r.Context()))
	rr := httptest.NewRecorder()

	RespondWithError(rr, r, http.StatusNotFound, "User with id 99 not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "User with id 99 not found", resp.Error)
	assert.Equal(t, GetTraceID(r.Context()), resp.TraceID)
	assert.NotEmpty(t, resp.TraceID)
	assert.Empty(t, resp.Fields)
}

func TestRespondWithValidationError(t *testing.T) {
	r := httptest.NewRequest("POST", "/users", nil)
	rr := httptest.NewRecorder()

	RespondWithValidationError(rr, r, []FieldError{
		{Field: "name", Message: "must be at least 2 characters"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Validation error", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "name", resp.Fields[0].Field)
}

func TestGetTraceIDMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, GetTraceID(r.Context()))
}
