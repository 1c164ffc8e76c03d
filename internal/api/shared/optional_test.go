package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshalJSON(t *testing.T) {
	type payload struct {
		Name Optional[string] `json:"name"`
		Age  Optional[int]    `json:"age"`
	}

	t.Run("absent fields stay unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Name.Set)
		assert.False(t, p.Age.Set)
	})

	t.Run("explicit null is set and null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &p))
		assert.True(t, p.Name.Set)
		assert.True(t, p.Name.Null)
		assert.False(t, p.Age.Set)
	})

	t.Run("value is set with the decoded value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name": "Alice", "age": 28}`), &p))
		assert.True(t, p.Name.Set)
		assert.False(t, p.Name.Null)
		assert.Equal(t, "Alice", p.Name.Value)
		assert.True(t, p.Age.Set)
		assert.Equal(t, 28, p.Age.Value)
	})

	t.Run("wrong type is an error", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"age": "old"}`), &p))
	})
}
