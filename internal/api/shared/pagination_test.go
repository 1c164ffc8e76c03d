package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      PageParams
		wantField string // empty means no error expected
	}{
		{name: "defaults", query: "", want: PageParams{Skip: 0, Limit: 10}},
		{name: "explicit values", query: "?skip=5&limit=20", want: PageParams{Skip: 5, Limit: 20}},
		{name: "limit at upper bound", query: "?limit=100", want: PageParams{Skip: 0, Limit: 100}},
		{name: "negative skip", query: "?skip=-1", wantField: "skip"},
		{name: "zero limit", query: "?limit=0", wantField: "limit"},
		{name: "limit above bound", query: "?limit=101", wantField: "limit"},
		{name: "non-integer skip", query: "?skip=abc", wantField: "skip"},
		{name: "non-integer limit", query: "?limit=ten", wantField: "limit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/users"+tc.query, nil)
			got, err := ParsePageParams(r)
			if tc.wantField != "" {
				require.Error(t, err)
				fields := FieldErrors(err)
				require.NotEmpty(t, fields)
				assert.Equal(t, tc.wantField, fields[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPageWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params PageParams
		want   []int
	}{
		{"full window", PageParams{Skip: 0, Limit: 10}, []int{1, 2, 3, 4, 5}},
		{"offset", PageParams{Skip: 2, Limit: 2}, []int{3, 4}},
		{"limit past end", PageParams{Skip: 3, Limit: 10}, []int{4, 5}},
		{"skip at end", PageParams{Skip: 5, Limit: 10}, []int{}},
		{"skip beyond end", PageParams{Skip: 50, Limit: 10}, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Page(items, tc.params)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
			// Window size law: min(limit, max(0, len-skip)).
			wantLen := len(items) - tc.params.Skip
			if wantLen < 0 {
				wantLen = 0
			}
			if wantLen > tc.params.Limit {
				wantLen = tc.params.Limit
			}
			assert.Len(t, got, wantLen)
		})
	}
}
