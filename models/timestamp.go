package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// timestampLayout matches the ISO-8601 form used by the mobile clients.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a millisecond precision instant.
//
// Clients send it either as epoch milliseconds or as an ISO-8601 string.
// Two timestamps are equal when their epoch milliseconds are equal, which is
// the only comparison reconciliation ever makes.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds and converts it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// TimestampFromMillis builds a Timestamp out of epoch milliseconds.
func TimestampFromMillis(ms int64) Timestamp {
	return Timestamp{time.UnixMilli(ms).UTC()}
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// Millis returns the epoch milliseconds of t; the zero Timestamp yields 0.
func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Equal reports whether t and other denote the same millisecond.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Millis() == other.Millis()
}

// ParseTimestamp converts a decoded JSON value (number, numeric string,
// ISO-8601 string or null) into a Timestamp.
func ParseTimestamp(value any) (Timestamp, error) {
	switch v := value.(type) {
	case nil:
		return Timestamp{}, nil
	case Timestamp:
		return v, nil
	case time.Time:
		return NewTimestamp(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Timestamp{}, fmt.Errorf("timestamp %v is not finite", v)
		}
		return TimestampFromMillis(int64(v)), nil
	case int64:
		return TimestampFromMillis(v), nil
	case int:
		return TimestampFromMillis(int64(v)), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return Timestamp{}, err
		}
		return TimestampFromMillis(ms), nil
	case string:
		if v == "" {
			return Timestamp{}, nil
		}
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return TimestampFromMillis(ms), nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return Timestamp{}, err
		}
		return NewTimestamp(parsed), nil
	default:
		return Timestamp{}, fmt.Errorf("unsupported timestamp type %T", value)
	}
}

// MarshalJSON encodes t as an ISO-8601 string, or null for the zero value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(timestampLayout))
}

// UnmarshalJSON accepts every form understood by [ParseTimestamp].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
