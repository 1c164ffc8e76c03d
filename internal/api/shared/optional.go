package shared

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for partial-update schemas. A field
// that never appears in the payload keeps Set false; an explicit JSON
// null sets both Set and Null; a concrete value sets Set and Value.
// The distinction matters because PATCH only touches fields the client
// actually sent.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON records presence before decoding the value. It is only
// invoked for keys present in the payload, so absent fields stay zero.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
