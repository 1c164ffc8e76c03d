package shared

import (
	"net/http"
	"strconv"
)

// Pagination defaults and bounds shared by every list endpoint.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams is the shared (skip, limit) contract for list endpoints.
type PageParams struct {
	Skip  int `json:"skip"  validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

// ParsePageParams reads skip and limit from the query string, applying
// defaults for absent parameters and validating the bounds. Violations
// are reported as per-field detail; they are a client input error, not a
// silent clamp.
func ParsePageParams(r *http.Request) (PageParams, error) {
	params := PageParams{Skip: DefaultSkip, Limit: DefaultLimit}
	var fields []FieldError

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, FieldError{Field: "skip", Message: "must be an integer"})
		} else {
			params.Skip = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, FieldError{Field: "limit", Message: "must be an integer"})
		} else {
			params.Limit = n
		}
	}
	if len(fields) > 0 {
		return params, &FieldsError{Fields: fields}
	}

	if err := Validate.Struct(params); err != nil {
		return params, err
	}
	return params, nil
}

// Page returns the sub-sequence of items starting at params.Skip with at
// most params.Limit elements. A skip beyond the end yields an empty
// slice, never an error. The result is always non-nil so it serializes
// as a JSON array.
func Page[T any](items []T, params PageParams) []T {
	if params.Skip >= len(items) {
		return make([]T, 0)
	}
	end := params.Skip + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[params.Skip:end]
}
