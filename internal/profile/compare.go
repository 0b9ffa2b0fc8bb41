package profile

import (
	"slices"
	"strings"
)

// FieldDiff is one field whose values differ between two exports of the
// same person. A side missing the field entirely has a nil value list.
type FieldDiff struct {
	Field string
	Ref   []string
	New   []string
}

// PersonDiff collects every differing field for one person, labelled with
// the reference-side display name when available.
type PersonDiff struct {
	Name   string
	Fields []FieldDiff
}

// Compare reports field-level differences between two profile exports,
// typically a saved reference snapshot and a fresh download. Each side is
// interpreted against its own field configuration so renamed or added
// fields still line up by label. People with no differences are omitted;
// people present on only one side report all of their fields against an
// empty other side. Results are ordered by display name.
func Compare(refHelper, newHelper *Helper, refProfiles, newProfiles []any) []PersonDiff {
	ref := indexProfiles(refHelper, refProfiles)
	cur := indexProfiles(newHelper, newProfiles)

	ids := mergeKeys(ref.order, cur.order)

	var diffs []PersonDiff
	for _, id := range ids {
		refPerson := ref.byID[id]
		curPerson := cur.byID[id]

		name := ""
		var fields []FieldDiff
		var labels []string
		refValues := map[string][]string{}
		curValues := map[string][]string{}

		if refPerson != nil {
			name = refPerson.name
			labels = refPerson.labels
			refValues = refPerson.values
		}
		if curPerson != nil {
			if name == "" {
				name = curPerson.name
			}
			labels = mergeKeys(labels, curPerson.labels)
			curValues = curPerson.values
		}

		for _, label := range labels {
			rv := refValues[label]
			cv := curValues[label]
			if !slices.Equal(rv, cv) {
				fields = append(fields, FieldDiff{Field: label, Ref: rv, New: cv})
			}
		}
		if len(fields) > 0 {
			diffs = append(diffs, PersonDiff{Name: name, Fields: fields})
		}
	}

	slices.SortStableFunc(diffs, func(a, b PersonDiff) int {
		return strings.Compare(a.Name, b.Name)
	})
	return diffs
}

type indexedPerson struct {
	name   string
	labels []string
	values map[string][]string
}

type profileIndex struct {
	order []string
	byID  map[string]*indexedPerson
}

func indexProfiles(helper *Helper, profiles []any) profileIndex {
	idx := profileIndex{byID: make(map[string]*indexedPerson)}
	for _, v := range profiles {
		raw, err := AsRaw(v)
		if err != nil {
			continue
		}
		id := stringField(raw, "id")
		if id == "" {
			continue
		}
		person := &indexedPerson{
			name:   DisplayName(raw),
			values: make(map[string][]string),
		}
		for _, fv := range helper.Values(raw) {
			person.labels = append(person.labels, fv.Label)
			person.values[fv.Label] = fv.Values
		}
		if _, dup := idx.byID[id]; !dup {
			idx.order = append(idx.order, id)
		}
		idx.byID[id] = person
	}
	return idx
}

// mergeKeys unions two ordered key lists, keeping the first list's order and
// appending keys unique to the second in their own order.
func mergeKeys(first, second []string) []string {
	seen := make(map[string]struct{}, len(first))
	merged := make([]string, 0, len(first)+len(second))
	for _, k := range first {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, k)
	}
	for _, k := range second {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, k)
	}
	return merged
}
