// Package people exposes the people endpoints: listings and single records
// run through the profile normalizer.
package people

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/profile"
	"github.com/tkoski/breeze-bridge/internal/respond"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

// Register wires people routes into the provided API router.
func Register(api huma.API, svc breeze.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-people",
		Method:      http.MethodGet,
		Path:        "/people",
		Summary:     "List people",
		Description: "Returns people from the account database with normalized names and addresses. Records that are not object-shaped are skipped and counted.",
		Tags:        []string{"People"},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		records, err := svc.ListPeople(ctx, breeze.PeopleListParams{
			Limit:   input.Limit,
			Offset:  input.Offset,
			Details: input.Details,
		})
		if err != nil {
			return nil, respond.MapServiceError(err)
		}

		people := make([]Person, 0, len(records))
		malformed := 0
		for i, record := range records {
			person, err := toPerson(record)
			if err != nil {
				malformed++
				applog.LogWarn(ctx, "skipping malformed person record",
					zap.Int("index", i), zap.Error(err))
				continue
			}
			people = append(people, person)
		}
		return &ListOutput{Body: ListData{
			People:    people,
			Count:     len(people),
			Malformed: malformed,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-person",
		Method:      http.MethodGet,
		Path:        "/people/{personId}",
		Summary:     "Get a person record",
		Description: "Returns the full person record in the shape Breeze produced it.",
		Tags:        []string{"People"},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		record, err := svc.GetPersonDetails(ctx, input.PersonID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		return &GetOutput{Body: record}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-person-summary",
		Method:      http.MethodGet,
		Path:        "/people/{personId}/summary",
		Summary:     "Get a normalized person summary",
		Description: "Returns the canonical name and address for one person, decoded from any of the historical profile field shapes.",
		Tags:        []string{"People"},
	}, func(ctx context.Context, input *GetInput) (*SummaryOutput, error) {
		record, err := svc.GetPersonDetails(ctx, input.PersonID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		person, err := toPerson(record)
		if err != nil {
			return nil, huma.Error502BadGateway("person record is not object-shaped")
		}
		return &SummaryOutput{Body: PersonSummary{
			Person:      person,
			DisplayName: profile.DisplayName(profile.RawProfile(record)),
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-person-values",
		Method:      http.MethodGet,
		Path:        "/people/{personId}/values",
		Summary:     "Get a person's profile field values",
		Description: "Returns every populated profile field rendered against the account's field configuration.",
		Tags:        []string{"People"},
	}, func(ctx context.Context, input *GetInput) (*ValuesOutput, error) {
		spec, err := svc.GetProfileFields(ctx)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}
		record, err := svc.GetPersonDetails(ctx, input.PersonID)
		if err != nil {
			return nil, respond.MapServiceError(err)
		}

		helper := profile.NewHelper(spec)
		values := helper.Values(profile.RawProfile(record))
		fields := make([]FieldValue, len(values))
		for i, fv := range values {
			fields[i] = FieldValue{Label: fv.Label, Values: fv.Values}
		}
		return &ValuesOutput{Body: ValuesData{Fields: fields}}, nil
	})
}

func toPerson(record breeze.Record) (Person, error) {
	normalized, err := profile.Normalize(record)
	if err != nil {
		return Person{}, err
	}
	return Person{
		ID:           recordID(record),
		FullName:     normalized.FullName,
		FirstName:    normalized.FirstName,
		LastName:     normalized.LastName,
		AddressLine1: normalized.AddressLine1,
		AddressLine2: normalized.AddressLine2,
	}, nil
}

// recordID tolerates both string and numeric ids; Breeze is inconsistent
// across endpoints.
func recordID(record breeze.Record) string {
	switch id := record["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}
