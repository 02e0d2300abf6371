package v1

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayouts are ISO 8601 forms without a UTC offset. Fractional seconds
// are accepted after the seconds field.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Timestamp is an event time on the wire. It accepts RFC 3339 values and
// offset-less ISO 8601 values, which are read as UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t for use in request structs.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time)
}

// ParseTimestamp parses an RFC 3339 or offset-less ISO 8601 timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: want ISO 8601, e.g. 2024-01-01T10:00:00Z", s)
}
