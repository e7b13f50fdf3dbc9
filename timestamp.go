package bankbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampFormat is the fixed textual layout for transaction timestamps.
// It is lexicographically sortable and matches the layout used in existing
// data files.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp is a wall-clock instant with second resolution.
type Timestamp struct {
	t time.Time
}

// Now returns the current instant, truncated to the second.
func Now() Timestamp {
	return Timestamp{t: time.Now().Truncate(time.Second)}
}

// NewTimestamp returns the timestamp for the given civil time in the local
// location.
func NewTimestamp(year int, month time.Month, day, hour, min, sec int) Timestamp {
	return Timestamp{t: time.Date(year, month, day, hour, min, sec, 0, time.Local)}
}

// ParseTimestamp parses a string in TimestampFormat.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// String formats the timestamp in TimestampFormat.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// Equal reports whether ts and x denote the same second.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// MarshalJSON encodes the timestamp as a quoted string in TimestampFormat.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON decodes a quoted string in TimestampFormat.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
