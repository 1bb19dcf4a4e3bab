package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/mkoval/plotline/internal/domain"
)

// encodeOffset serializes a title offset for storage. Nodes always store a
// concrete offset; a zero value encodes as {"x":0,"y":0}.
func encodeOffset(o domain.Offset) string {
	b, err := json.Marshal(o)
	if err != nil {
		return `{"x":0,"y":0}`
	}
	return string(b)
}

// decodeOffset parses a stored offset. NULL, empty, or invalid JSON decodes
// to the zero offset; a read never fails on a bad offset blob.
func decodeOffset(s sql.NullString) domain.Offset {
	if !s.Valid || s.String == "" {
		return domain.Offset{}
	}
	var o domain.Offset
	if err := json.Unmarshal([]byte(s.String), &o); err != nil {
		return domain.Offset{}
	}
	return o
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
