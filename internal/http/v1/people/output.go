package people

import "github.com/tkoski/breeze-bridge/internal/service/breeze"

// ListData is the response body for listing people.
type ListData struct {
	People []Person `json:"people" doc:"Normalized people in listing order"`
	Count  int      `json:"count"  doc:"Number of people returned" example:"2"`
	// Malformed counts list items that were not record-shaped and were
	// skipped instead of failing the listing.
	Malformed int `json:"malformed,omitempty" doc:"Number of skipped malformed records" example:"0"`
}

// ListOutput is the response wrapper for GET /people.
type ListOutput struct {
	Body ListData
}

// GetOutput is the response wrapper for GET /people/{personId}. The body is
// the person record exactly as Breeze returned it.
type GetOutput struct {
	Body breeze.Record
}

// SummaryOutput is the response wrapper for GET /people/{personId}/summary.
type SummaryOutput struct {
	Body PersonSummary
}

// ValuesData is the response body for a person's profile field values.
type ValuesData struct {
	Fields []FieldValue `json:"fields" doc:"Populated fields in configuration order"`
}

// ValuesOutput is the response wrapper for GET /people/{personId}/values.
type ValuesOutput struct {
	Body ValuesData
}
