// Package breeze is a thin client for the Breeze ChMS REST API
// (https://app.breezechms.com/api). It marshals query parameters, applies
// the account API key, and surfaces the remote error taxonomy; it does not
// persist or cache anything.
package breeze

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrConfig       = errors.New("breeze configuration invalid")
	ErrBadParameter = errors.New("breeze bad parameter")
	ErrAPI          = errors.New("breeze api error")
	ErrTransport    = errors.New("breeze request failed")
	ErrDecode       = errors.New("breeze malformed response")
)

// ErrorKind classifies client failures.
type ErrorKind string

const (
	ErrorKindConfig       ErrorKind = "config"
	ErrorKindBadParameter ErrorKind = "bad_parameter"
	ErrorKindAPI          ErrorKind = "api"
	ErrorKindTransport    ErrorKind = "transport"
	ErrorKindDecode       ErrorKind = "decode"
)

// Error carries request metadata for error mapping. API-kinded errors keep
// the decoded error payload the remote returned.
type Error struct {
	Kind     ErrorKind
	Endpoint string
	Status   int
	Payload  any
	cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "breeze error"
	}
	msg := fmt.Sprintf("breeze error (kind=%s", e.Kind)
	if e.Endpoint != "" {
		msg += fmt.Sprintf(" endpoint=%s", e.Endpoint)
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" status=%d", e.Status)
	}
	msg += ")"
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Record is a decoded API object passed through in the shape the remote
// produced it. Most Breeze payloads are too account-specific to type.
type Record = map[string]any

// Fund is one giving fund. Breeze returns every attribute as a string.
type Fund struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TaxDeductible string `json:"tax_deductible"`
	IsDefault     string `json:"is_default"`
	Total         string `json:"total,omitempty"`
	CreatedOn     string `json:"created_on"`
}

// Tag is one people tag.
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FolderID  string `json:"folder_id"`
	CreatedOn string `json:"created_on"`
}

// TagFolder is one tag folder.
type TagFolder struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent_id"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
}

// Service defines the Breeze API operations this project uses. The split
// mirrors the remote endpoint groups: people, profile fields, events and
// attendance, giving, pledges, tags, and forms.
type Service interface {
	AccountSummary(ctx context.Context) (Record, error)

	ListPeople(ctx context.Context, params PeopleListParams) ([]Record, error)
	GetPersonDetails(ctx context.Context, personID string) (Record, error)
	AddPerson(ctx context.Context, params AddPersonParams) ([]Record, error)
	UpdatePerson(ctx context.Context, personID, fieldsJSON string) ([]Record, error)

	GetProfileFields(ctx context.Context) ([]any, error)

	ListEvents(ctx context.Context, params EventListParams) ([]Record, error)
	GetEvent(ctx context.Context, instanceID string) (Record, error)
	ListCalendars(ctx context.Context) ([]Record, error)
	AddEvent(ctx context.Context, params AddEventParams) ([]Record, error)
	EventCheckIn(ctx context.Context, personID, instanceID string) (bool, error)
	EventCheckOut(ctx context.Context, personID, instanceID string) (bool, error)
	DeleteAttendance(ctx context.Context, personID, instanceID string) (bool, error)
	ListAttendance(ctx context.Context, instanceID string, details bool) ([]Record, error)
	ListEligiblePeople(ctx context.Context, instanceID string) ([]Record, error)

	AddContribution(ctx context.Context, params ContributionParams) (string, error)
	EditContribution(ctx context.Context, params ContributionParams) (string, error)
	DeleteContribution(ctx context.Context, paymentID string) (string, error)
	ListContributions(ctx context.Context, params ContributionListParams) ([]Record, error)
	ListFunds(ctx context.Context, params FundListParams) ([]Fund, error)

	ListCampaigns(ctx context.Context) ([]Record, error)
	ListPledges(ctx context.Context, campaignID string) ([]Record, error)

	ListTags(ctx context.Context, params TagListParams) ([]Tag, error)
	ListTagFolders(ctx context.Context) ([]TagFolder, error)
	AssignTag(ctx context.Context, personID, tagID string) (bool, error)
	UnassignTag(ctx context.Context, personID, tagID string) (bool, error)

	ListFormEntries(ctx context.Context, formID string, details bool) ([]Record, error)
	ListFormFields(ctx context.Context, formID string) ([]Record, error)
	RemoveFormEntry(ctx context.Context, entryID string) (bool, error)
}
