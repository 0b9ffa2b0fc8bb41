// Package profile normalizes person records returned by the Breeze ChMS API.
//
// Breeze has changed the shape of several profile fields across releases:
// the street address moved from two flat fields into a single composite
// field, and the first-name field can carry either a legal first name or a
// preferred name depending on account configuration. This package decodes
// all known historical shapes into one canonical form.
package profile

import (
	"fmt"
	"strings"
)

// RawProfile is a decoded person record exactly as returned by the remote
// API: a mapping from field key to a scalar or composite value.
type RawProfile map[string]any

// NormalizedProfile is the canonical name/address shape derived from a
// RawProfile. Missing optional fields degrade to empty strings.
type NormalizedProfile struct {
	FullName     string
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
}

// MalformedProfileError reports input that is not a record-shaped value at
// all. Individually missing fields are never an error.
type MalformedProfileError struct {
	Value any
}

func (e *MalformedProfileError) Error() string {
	return fmt.Sprintf("profile: malformed record of type %T", e.Value)
}

// AsRaw coerces a decoded API value into a RawProfile. Anything that is not
// a JSON object fails with MalformedProfileError.
func AsRaw(v any) (RawProfile, error) {
	switch m := v.(type) {
	case RawProfile:
		if m == nil {
			return nil, &MalformedProfileError{Value: v}
		}
		return m, nil
	case map[string]any:
		if m == nil {
			return nil, &MalformedProfileError{Value: v}
		}
		return RawProfile(m), nil
	default:
		return nil, &MalformedProfileError{Value: v}
	}
}

// Normalize derives a NormalizedProfile from a decoded person record. It is
// a pure function of its input and fails only when the input is not a
// record; absent name or address fields resolve to empty strings.
func Normalize(v any) (NormalizedProfile, error) {
	raw, err := AsRaw(v)
	if err != nil {
		return NormalizedProfile{}, err
	}

	first, last := resolveName(raw)
	line1, line2 := resolveAddress(raw)

	return NormalizedProfile{
		FullName:     joinName(first, last),
		FirstName:    first,
		LastName:     last,
		AddressLine1: line1,
		AddressLine2: line2,
	}, nil
}

// resolveName picks the semantic first and last name out of a record.
//
// The first-name field has carried two meanings across Breeze versions. When
// a distinct nick_name companion is present the account follows the
// preferred-name convention and the nickname is what users expect to see as
// the first name; without a companion the first_name field is taken at face
// value.
func resolveName(raw RawProfile) (first, last string) {
	first = stringField(raw, "first_name")
	last = stringField(raw, "last_name")

	if nick := stringField(raw, "nick_name"); nick != "" && nick != first {
		first = nick
	}
	return first, last
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// stringField returns a trimmed string value for key, or "" when the field
// is absent, null, or not a scalar string.
func stringField(raw RawProfile, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
