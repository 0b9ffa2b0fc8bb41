package timeutil

import (
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// Use this format for consistent timestamp output across the API.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// BreezeStamp is the local-time layout Breeze uses in its payloads.
const BreezeStamp = "2006-01-02 15:04:05"

// breezeZero is what Breeze returns for "no timestamp".
const breezeZero = "0000-00-00 00:00:00"

// Time wraps time.Time to ensure consistent RFC 3339 millisecond precision
// in JSON marshaling. Output format is always "2024-01-15T10:30:00.000Z".
//
// Null handling: When unmarshaling JSON null, the existing value is preserved
// (not zeroed). This matches the behavior of the standard library's time.Time.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler with fixed millisecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting RFC 3339 variants.
// JSON null preserves the existing value, matching time.Time stdlib behavior.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// NewTime creates a Time from a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current time as a Time.
func Now() Time {
	return Time{Time: time.Now()}
}

// ParseBreeze parses a Breeze timestamp. The remote's all-zero placeholder
// and the empty string parse to the zero Time without error.
func ParseBreeze(s string) (Time, error) {
	if s == "" || s == breezeZero {
		return Time{}, nil
	}
	parsed, err := time.Parse(BreezeStamp, s)
	if err != nil {
		// Date-only values show up in event listings.
		parsed, err = time.Parse("2006-01-02", s)
		if err != nil {
			return Time{}, err
		}
	}
	return Time{Time: parsed}, nil
}
