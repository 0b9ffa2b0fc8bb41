package giving

// FundListInput defines query parameters for listing funds.
type FundListInput struct {
	IncludeTotals bool `query:"include_totals" doc:"Include all-time giving totals per fund"`
}

// ContributionListInput defines query parameters for listing contributions.
// List-valued filters take comma-separated values.
type ContributionListInput struct {
	Start         string `query:"start"          doc:"Earliest contribution date, YYYY-MM-DD" example:"2024-01-01" pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"false"`
	End           string `query:"end"            doc:"Latest contribution date, YYYY-MM-DD"   example:"2024-12-31" pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"false"`
	PersonID      string `query:"person_id"      doc:"Restrict to one person"                 example:"12345"      pattern:"^[0-9]+$"               required:"false"`
	IncludeFamily bool   `query:"include_family" doc:"Widen a person filter to their family; requires person_id"`
	AmountMin     string `query:"amount_min"     doc:"Minimum amount" example:"10.00" required:"false"`
	AmountMax     string `query:"amount_max"     doc:"Maximum amount" example:"500.00" required:"false"`
	FundIDs       string `query:"fund_ids"       doc:"Comma-separated fund ids" example:"201,202" required:"false"`
	EnvelopeNum   string `query:"envelope_number" doc:"Envelope number" required:"false"`
}

// ContributionAddInput defines the body for recording a contribution.
type ContributionAddInput struct {
	Body ContributionAddBody
}

// ContributionAddBody carries the contribution attributes. Date is
// YYYY-MM-DD; Amount is a decimal string because Breeze stores money as
// strings.
type ContributionAddBody struct {
	Date      string `json:"date"                doc:"Contribution date, YYYY-MM-DD" example:"2024-06-02" pattern:"^\\d{4}-\\d{2}-\\d{2}$"`
	PersonID  string `json:"person_id,omitempty" doc:"Contributor person id"         example:"12345"`
	Name      string `json:"name,omitempty"      doc:"Contributor name when no person id is known" example:"Alex Ortiz"`
	Amount    string `json:"amount"              doc:"Decimal amount"                example:"50.00"`
	Method    string `json:"method,omitempty"    doc:"Payment method"                example:"Check"`
	FundsJSON string `json:"funds_json,omitempty" doc:"Fund split in Breeze funds_json encoding"`
	Group     string `json:"group,omitempty"     doc:"Batch grouping key"`
}

// ContributionDeleteInput defines path parameters for deleting a
// contribution.
type ContributionDeleteInput struct {
	PaymentID string `path:"paymentId" doc:"Payment identifier" example:"9001" pattern:"^[0-9]+$"`
}
