package giving

import "github.com/tkoski/breeze-bridge/internal/service/breeze"

// FundListData is the response body for listing funds.
type FundListData struct {
	Funds []Fund `json:"funds" doc:"Funds in account order"`
	Count int    `json:"count" doc:"Number of funds returned" example:"2"`
}

// FundListOutput is the response wrapper for GET /funds.
type FundListOutput struct {
	Body FundListData
}

// ContributionListData is the response body for listing contributions.
// Entries are passed through in the shape Breeze produced them.
type ContributionListData struct {
	Contributions []breeze.Record `json:"contributions" doc:"Matching contributions, newest first"`
	Count         int             `json:"count"         doc:"Number of contributions returned" example:"3"`
}

// ContributionListOutput is the response wrapper for GET /contributions.
type ContributionListOutput struct {
	Body ContributionListData
}

// ContributionAddData is the response body after recording a contribution.
type ContributionAddData struct {
	PaymentID string `json:"payment_id" doc:"Identifier Breeze assigned to the payment" example:"9001"`
}

// ContributionAddOutput is the response wrapper for POST /contributions.
type ContributionAddOutput struct {
	Body ContributionAddData
}

// ContributionDeleteData is the response body after deleting a contribution.
type ContributionDeleteData struct {
	PaymentID string `json:"payment_id" doc:"Identifier of the deleted payment" example:"9001"`
}

// ContributionDeleteOutput is the response wrapper for
// DELETE /contributions/{paymentId}.
type ContributionDeleteOutput struct {
	Body ContributionDeleteData
}
