package profile

import (
	"fmt"
	"strings"
)

// DisplayName renders a person record as "Last, First (Nick) Middle",
// degrading gracefully as components go missing. A nickname equal to the
// first name is redundant and omitted. A record with no name fields at all
// falls back to the person id so the caller always gets something to show.
func DisplayName(raw RawProfile) string {
	first := stringField(raw, "first_name")
	last := stringField(raw, "last_name")
	middle := stringField(raw, "middle_name")
	nick := stringField(raw, "nick_name")

	var parts []string
	if first != "" {
		parts = append(parts, first)
	}
	if nick != "" && nick != first {
		parts = append(parts, "("+nick+")")
	}
	if middle != "" {
		parts = append(parts, middle)
	}
	given := strings.Join(parts, " ")

	switch {
	case last != "" && given != "":
		return last + ", " + given
	case last != "":
		return last
	case given != "":
		return given
	default:
		return fmt.Sprintf("No name, id %s", stringField(raw, "id"))
	}
}
