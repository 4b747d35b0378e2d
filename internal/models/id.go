package models

import (
	"bytes"
	"encoding/json"
)

// ID identifies line items, bookings and profiles. New ids are UUIDs, but
// blobs written by the browser storefront carry numeric ids, so decoding also
// accepts a JSON number and keeps its literal text.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
