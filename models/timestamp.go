package models

import (
	"fmt"
	"strings"
	"time"
)

// wireTimeLayout is the timestamp form used on the wire:
// 'YYYY-MM-DDTHH:MM:SS', no timezone designator.
const wireTimeLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with the API wire format. It marshals to the
// bare 'YYYY-MM-DDTHH:MM:SS' form and unmarshals from either that form or
// full RFC 3339.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t in a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(wireTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts bare wire-format
// timestamps as well as RFC 3339 strings.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if parsed, err := time.Parse(wireTimeLayout, s); err == nil {
		t.Time = parsed
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed

	return nil
}
