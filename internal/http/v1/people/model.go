package people

// Person is the canonical name/address projection of one person record.
// Optional fields degrade to empty strings rather than being omitted.
type Person struct {
	ID           string `json:"id"            doc:"Person identifier"               example:"12345"`
	FullName     string `json:"full_name"     doc:"Space-joined first and last name" example:"Alex Ortiz"`
	FirstName    string `json:"first_name"    doc:"Preferred first name"             example:"Alex"`
	LastName     string `json:"last_name"     doc:"Last name"                        example:"Ortiz"`
	AddressLine1 string `json:"address_line_1" doc:"First street address line"       example:"123 Main St"`
	AddressLine2 string `json:"address_line_2" doc:"Second street address line"      example:"Apt 4"`
}

// PersonSummary extends Person with the list-style display name.
type PersonSummary struct {
	Person
	DisplayName string `json:"display_name" doc:"Name rendered as Last, First (Nick) Middle" example:"Ortiz, Alex"`
}

// FieldValue is one profile field with its extracted display values.
type FieldValue struct {
	Label  string   `json:"label"  doc:"Qualified Section:Field label" example:"Contact:Phone"`
	Values []string `json:"values" doc:"Rendered values for the field"`
}
