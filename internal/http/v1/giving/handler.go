// Package giving exposes the funds and contributions endpoints.
package giving

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tkoski/breeze-bridge/internal/respond"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

// Register wires giving routes into the provided API router.
func Register(api huma.API, svc breeze.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-funds",
		Method:      http.MethodGet,
		Path:        "/funds",
		Summary:     "List giving funds",
		Description: "Returns every fund configured for the account, optionally with all-time totals.",
		Tags:        []string{"Giving"},
	}, func(ctx context.Context, input *FundListInput) (*FundListOutput, error) {
		funds, err := svc.ListFunds(ctx, breeze.FundListParams{IncludeTotals: input.IncludeTotals})
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		out := make([]Fund, len(funds))
		for i, f := range funds {
			out[i] = Fund(f)
		}
		return &FundListOutput{Body: FundListData{Funds: out, Count: len(out)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contributions",
		Method:      http.MethodGet,
		Path:        "/contributions",
		Summary:     "List contributions",
		Description: "Returns contributions matching the given filters. Filtering by family requires a person id.",
		Tags:        []string{"Giving"},
	}, func(ctx context.Context, input *ContributionListInput) (*ContributionListOutput, error) {
		records, err := svc.ListContributions(ctx, breeze.ContributionListParams{
			Start:          input.Start,
			End:            input.End,
			PersonID:       input.PersonID,
			IncludeFamily:  input.IncludeFamily,
			AmountMin:      input.AmountMin,
			AmountMax:      input.AmountMax,
			FundIDs:        splitList(input.FundIDs),
			EnvelopeNumber: input.EnvelopeNum,
		})
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &ContributionListOutput{Body: ContributionListData{
			Contributions: records,
			Count:         len(records),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-contribution",
		Method:      http.MethodPost,
		Path:        "/contributions",
		Summary:     "Record a contribution",
		Description: "Records one payment and returns the identifier Breeze assigned to it.",
		Tags:        []string{"Giving"},
	}, func(ctx context.Context, input *ContributionAddInput) (*ContributionAddOutput, error) {
		paymentID, err := svc.AddContribution(ctx, breeze.ContributionParams{
			Date:      input.Body.Date,
			PersonID:  input.Body.PersonID,
			Name:      input.Body.Name,
			Amount:    input.Body.Amount,
			Method:    input.Body.Method,
			FundsJSON: input.Body.FundsJSON,
			Group:     input.Body.Group,
		})
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &ContributionAddOutput{Body: ContributionAddData{PaymentID: paymentID}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-contribution",
		Method:      http.MethodDelete,
		Path:        "/contributions/{paymentId}",
		Summary:     "Delete a contribution",
		Description: "Deletes one payment and returns the identifier of the deleted record.",
		Tags:        []string{"Giving"},
	}, func(ctx context.Context, input *ContributionDeleteInput) (*ContributionDeleteOutput, error) {
		deleted, err := svc.DeleteContribution(ctx, input.PaymentID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &ContributionDeleteOutput{Body: ContributionDeleteData{PaymentID: deleted}}, nil
	})
}

// splitList turns a comma-separated query value into its elements, dropping
// empties so a trailing comma is harmless.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
