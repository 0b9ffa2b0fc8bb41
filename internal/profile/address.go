package profile

import "strings"

// Breeze has used two mutually exclusive encodings for a two-line street
// address:
//
//   - new: a single composite "address" field holding both lines, either as
//     a two-element array or as an object whose street_address embeds
//     "<br>" / "<br />" line breaks;
//   - old: two independent flat fields "address_1" and "address_2".
//
// resolveAddress tries each known shape in fixed priority order and commits
// to the first that matches. A record with only one line present yields an
// empty second line rather than a lookup failure.
func resolveAddress(raw RawProfile) (line1, line2 string) {
	if v, ok := raw["address"]; ok && v != nil {
		if l1, l2, ok := decodeCompositeAddress(v); ok {
			return l1, l2
		}
	}

	line1 = stringField(raw, "address_1")
	line2 = stringField(raw, "address_2")
	if line1 == "" && line2 == "" {
		if street := stringField(raw, "street_address"); street != "" {
			return splitStreetLines(street)
		}
	}
	if line1 == "" && line2 != "" {
		return line2, ""
	}
	return line1, line2
}

// decodeCompositeAddress interprets the composite "address" value. It
// reports false when the value matches none of the known composite shapes,
// letting the caller fall through to the flat encoding.
func decodeCompositeAddress(v any) (line1, line2 string, ok bool) {
	switch a := v.(type) {
	case []any:
		if len(a) == 0 {
			return "", "", false
		}
		line1 = scalarString(a[0])
		if len(a) > 1 {
			line2 = scalarString(a[1])
		}
		return line1, line2, true
	case map[string]any:
		m := RawProfile(a)
		l1 := stringField(m, "address_1")
		l2 := stringField(m, "address_2")
		if l1 != "" || l2 != "" {
			return l1, l2, true
		}
		if street := stringField(m, "street_address"); street != "" {
			l1, l2 = splitStreetLines(street)
			return l1, l2, true
		}
		return "", "", false
	case string:
		if a == "" {
			return "", "", false
		}
		line1, line2 = splitStreetLines(a)
		return line1, line2, true
	default:
		return "", "", false
	}
}

// splitStreetLines splits a street address on the HTML line breaks Breeze
// embeds in its current encoding. Only the first break is significant.
func splitStreetLines(street string) (line1, line2 string) {
	street = strings.ReplaceAll(street, "<br />", "<br>")
	first, rest, found := strings.Cut(street, "<br>")
	if !found {
		return strings.TrimSpace(street), ""
	}
	return strings.TrimSpace(first), strings.TrimSpace(rest)
}

func scalarString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
