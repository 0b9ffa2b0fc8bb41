package profile

import (
	"fmt"
	"strings"
)

// FieldSpec describes one profile field from the account's field
// configuration, as returned by the profile-fields endpoint.
type FieldSpec struct {
	FieldID string
	Name    string
	Type    string
	Section string
	// Options maps option id to option name for choice-style fields.
	Options map[string]string
}

// Label is the qualified "Section:Field" name used when reporting values.
func (f *FieldSpec) Label() string {
	if f.Section == "" {
		return f.Name
	}
	return f.Section + ":" + f.Name
}

// Helper indexes an account's profile-field configuration and extracts
// human-readable values from person records against it.
type Helper struct {
	order  []string
	byID   map[string]*FieldSpec
	byName map[string]*FieldSpec
}

// NewHelper parses the decoded profile-fields payload: a list of sections,
// each carrying a "name" and a "fields" list. Entries that do not match the
// expected shape are skipped rather than failing the whole spec.
func NewHelper(spec []any) *Helper {
	h := &Helper{
		byID:   make(map[string]*FieldSpec),
		byName: make(map[string]*FieldSpec),
	}
	for _, rawSection := range spec {
		section, ok := rawSection.(map[string]any)
		if !ok {
			continue
		}
		sectionName := stringField(section, "name")
		fields, _ := section["fields"].([]any)
		for _, rawField := range fields {
			field, ok := rawField.(map[string]any)
			if !ok {
				continue
			}
			fs := &FieldSpec{
				FieldID: stringField(field, "field_id"),
				Name:    stringField(field, "name"),
				Type:    stringField(field, "field_type"),
				Section: sectionName,
				Options: parseOptions(field["options"]),
			}
			if fs.FieldID == "" {
				continue
			}
			h.order = append(h.order, fs.FieldID)
			h.byID[fs.FieldID] = fs
			if fs.Name != "" {
				h.byName[fs.Name] = fs
			}
		}
	}
	return h
}

func parseOptions(v any) map[string]string {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	options := make(map[string]string, len(list))
	for _, rawOption := range list {
		option, ok := rawOption.(map[string]any)
		if !ok {
			continue
		}
		id := stringField(option, "option_id")
		if id == "" {
			id = stringField(option, "id")
		}
		if name := stringField(option, "name"); id != "" && name != "" {
			options[id] = name
		}
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

// SpecByID returns the field spec for a field id, or nil.
func (h *Helper) SpecByID(id string) *FieldSpec {
	return h.byID[id]
}

// SpecByName returns the field spec for a field name, or nil.
func (h *Helper) SpecByName(name string) *FieldSpec {
	return h.byName[name]
}

// FieldIDToName maps every known field id to its "Section:Field" label.
func (h *Helper) FieldIDToName() map[string]string {
	names := make(map[string]string, len(h.byID))
	for id, fs := range h.byID {
		names[id] = fs.Label()
	}
	return names
}

// FieldValues is one field's extracted values, labelled for display.
type FieldValues struct {
	Label  string
	Values []string
}

// Values extracts every populated field of a person record in field-spec
// order, starting with a synthetic Name entry. Fields with no value are
// omitted.
func (h *Helper) Values(raw RawProfile) []FieldValues {
	result := []FieldValues{{Label: "Name", Values: []string{DisplayName(raw)}}}

	details, _ := raw["details"].(map[string]any)
	if details == nil {
		return result
	}
	for _, id := range h.order {
		fs := h.byID[id]
		values := fs.extract(details[id])
		if len(values) > 0 {
			result = append(result, FieldValues{Label: fs.Label(), Values: values})
		}
	}
	return result
}

// extract renders a field's raw detail value into display strings according
// to the field type.
func (f *FieldSpec) extract(v any) []string {
	if v == nil {
		return nil
	}
	switch f.Type {
	case "phone":
		return extractEntries(v, extractPhone)
	case "email":
		return extractEntries(v, extractEmail)
	case "address":
		return extractEntries(v, extractAddress)
	case "checkbox", "dropdown", "multiple_choice", "radio":
		return f.extractChoices(v)
	default:
		return extractScalar(v)
	}
}

func extractEntries(v any, one func(RawProfile) string) []string {
	entries, ok := v.([]any)
	if !ok {
		if m, ok := v.(map[string]any); ok {
			entries = []any{m}
		} else {
			return nil
		}
	}
	var values []string
	for _, rawEntry := range entries {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			continue
		}
		if s := one(RawProfile(entry)); s != "" {
			values = append(values, s)
		}
	}
	return values
}

func extractPhone(entry RawProfile) string {
	number := stringField(entry, "phone_number")
	if number == "" {
		return ""
	}
	var b strings.Builder
	if kind := stringField(entry, "phone_type"); kind != "" {
		b.WriteString(kind)
		b.WriteString(":")
	}
	b.WriteString(number)
	if flagSet(entry, "is_private") {
		b.WriteString("(private)")
	}
	if flagSet(entry, "do_not_text") {
		b.WriteString("(no text)")
	}
	return b.String()
}

func extractEmail(entry RawProfile) string {
	address := stringField(entry, "address")
	if address == "" {
		return ""
	}
	if flagSet(entry, "is_private") {
		address += "(private)"
	}
	return address
}

// extractAddress renders "line1;line2;City ST zip", dropping empty parts.
func extractAddress(entry RawProfile) string {
	line1, line2 := splitStreetLines(stringField(entry, "street_address"))
	locality := strings.TrimSpace(strings.Join(nonEmpty(
		stringField(entry, "city"),
		stringField(entry, "state"),
		stringField(entry, "zip"),
	), " "))

	parts := nonEmpty(line1, line2, locality)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ";")
}

// extractChoices maps option ids through the field's option table.
func (f *FieldSpec) extractChoices(v any) []string {
	var ids []string
	switch value := v.(type) {
	case string:
		ids = []string{value}
	case []any:
		for _, item := range value {
			switch it := item.(type) {
			case string:
				ids = append(ids, it)
			case map[string]any:
				if id := stringField(it, "value"); id != "" {
					ids = append(ids, id)
				} else if name := stringField(it, "name"); name != "" {
					ids = append(ids, name)
				}
			}
		}
	case map[string]any:
		if id := stringField(value, "value"); id != "" {
			ids = []string{id}
		} else if name := stringField(value, "name"); name != "" {
			ids = []string{name}
		}
	}

	var values []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if name, ok := f.Options[id]; ok {
			values = append(values, name)
		} else {
			values = append(values, id)
		}
	}
	return values
}

func extractScalar(v any) []string {
	switch value := v.(type) {
	case string:
		if s := strings.TrimSpace(value); s != "" {
			return []string{s}
		}
		return nil
	case map[string]any:
		for _, key := range []string{"value", "content", "name"} {
			if s := stringField(value, key); s != "" {
				return []string{s}
			}
		}
		return nil
	case float64, bool:
		return []string{fmt.Sprint(value)}
	default:
		return nil
	}
}

func flagSet(entry RawProfile, key string) bool {
	switch v := entry[key].(type) {
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return false
	}
}

func nonEmpty(parts ...string) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
