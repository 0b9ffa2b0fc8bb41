package giving

// Fund is one giving fund. Totals are present only when requested.
type Fund struct {
	ID            string `json:"id"             doc:"Fund identifier"           example:"201"`
	Name          string `json:"name"           doc:"Fund name"                 example:"General Fund"`
	TaxDeductible string `json:"tax_deductible" doc:"Whether gifts are tax deductible, 1 or 0" example:"1"`
	IsDefault     string `json:"is_default"     doc:"Whether this is the default fund, 1 or 0" example:"1"`
	Total         string `json:"total,omitempty" doc:"All-time giving total, when requested"   example:"12500.00"`
	CreatedOn     string `json:"created_on"     doc:"Creation timestamp"        example:"2020-01-15 09:30:00"`
}
