package breeze

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Optional filters are modelled as params structs whose zero value means
// "no filter": zero-valued fields are simply left off the query string, so
// an omitted filter can never be an error. The remote API has historically
// broken on absent optional arguments; the structs make that failure mode
// unrepresentable here.

// PeopleListParams filters a people listing. The zero value returns the
// whole database with names only.
type PeopleListParams struct {
	// Limit caps the number of people returned; zero returns everyone.
	Limit int
	// Offset skips results for pagination.
	Offset int
	// Details requests full profile data instead of names only.
	Details bool
	// FilterJSON narrows results by profile field criteria.
	FilterJSON map[string]any
}

func (p PeopleListParams) values() (url.Values, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Details {
		q.Set("details", "1")
	}
	if len(p.FilterJSON) > 0 {
		encoded, err := json.Marshal(p.FilterJSON)
		if err != nil {
			return nil, err
		}
		q.Set("filter_json", string(encoded))
	}
	return q, nil
}

// AddPersonParams creates a person record. FieldsJSON optionally seeds
// profile fields using the remote fields_json encoding.
type AddPersonParams struct {
	FirstName  string
	LastName   string
	FieldsJSON string
}

func (p AddPersonParams) values() url.Values {
	q := url.Values{}
	q.Set("first", p.FirstName)
	q.Set("last", p.LastName)
	if p.FieldsJSON != "" {
		q.Set("fields_json", p.FieldsJSON)
	}
	return q
}

// EventListParams filters an event listing. The zero value asks the remote
// for its default range, the current month.
type EventListParams struct {
	Start      string
	End        string
	CategoryID string
	Details    bool
	Eligible   bool
	Limit      int
}

func (p EventListParams) values() url.Values {
	q := url.Values{}
	if p.Start != "" {
		q.Set("start", p.Start)
	}
	if p.End != "" {
		q.Set("end", p.End)
	}
	if p.CategoryID != "" {
		q.Set("category_id", p.CategoryID)
	}
	if p.Details {
		q.Set("details", "1")
	}
	if p.Eligible {
		q.Set("eligible", "1")
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// AddEventParams creates a calendar event.
type AddEventParams struct {
	Name        string
	StartsOn    string
	EndsOn      string
	AllDay      *bool
	Description string
	CategoryID  string
	EventID     string
}

func (p AddEventParams) values() url.Values {
	q := url.Values{}
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	if p.StartsOn != "" {
		q.Set("starts_on", p.StartsOn)
	}
	if p.EndsOn != "" {
		q.Set("ends_on", p.EndsOn)
	}
	if p.AllDay != nil {
		q.Set("all_day", boolFlag(*p.AllDay))
	}
	if p.Description != "" {
		q.Set("description", p.Description)
	}
	if p.CategoryID != "" {
		q.Set("category_id", p.CategoryID)
	}
	if p.EventID != "" {
		q.Set("event_id", p.EventID)
	}
	return q
}

// ContributionParams carries the fields shared by the add and edit
// contribution calls. PaymentID is only meaningful when editing.
type ContributionParams struct {
	PaymentID     string
	Date          string
	Name          string
	PersonID      string
	UID           string
	Email         string
	StreetAddress string
	Processor     string
	Method        string
	FundsJSON     string
	Amount        string
	Group         string
	BatchNumber   string
	BatchName     string
}

func (p ContributionParams) values() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("payment_id", p.PaymentID)
	set("date", p.Date)
	set("name", p.Name)
	set("person_id", p.PersonID)
	set("uid", p.UID)
	set("email", p.Email)
	set("street_address", p.StreetAddress)
	set("processor", p.Processor)
	set("method", p.Method)
	set("funds_json", p.FundsJSON)
	set("amount", p.Amount)
	set("group", p.Group)
	set("batch_number", p.BatchNumber)
	set("batch_name", p.BatchName)
	return q
}

// ContributionListParams filters a contribution listing. List-valued
// filters are joined with "-" on the wire, per the remote convention.
type ContributionListParams struct {
	Start          string
	End            string
	PersonID       string
	IncludeFamily  bool
	AmountMin      string
	AmountMax      string
	MethodIDs      []string
	FundIDs        []string
	EnvelopeNumber string
	Batches        []string
	Forms          []string
}

func (p ContributionListParams) values() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("start", p.Start)
	set("end", p.End)
	set("person_id", p.PersonID)
	if p.IncludeFamily {
		q.Set("include_family", "1")
	}
	set("amount_min", p.AmountMin)
	set("amount_max", p.AmountMax)
	set("method_ids", strings.Join(p.MethodIDs, "-"))
	set("fund_ids", strings.Join(p.FundIDs, "-"))
	set("envelope_number", p.EnvelopeNumber)
	set("batches", strings.Join(p.Batches, "-"))
	set("forms", strings.Join(p.Forms, "-"))
	return q
}

// FundListParams configures a fund listing. The zero value lists all funds
// without totals.
type FundListParams struct {
	IncludeTotals bool
}

func (p FundListParams) values() url.Values {
	q := url.Values{}
	if p.IncludeTotals {
		q.Set("include_totals", "1")
	}
	return q
}

// TagListParams restricts a tag listing to one folder. The zero value
// lists every tag.
type TagListParams struct {
	FolderID string
}

func (p TagListParams) values() url.Values {
	q := url.Values{}
	if p.FolderID != "" {
		q.Set("folder_id", p.FolderID)
	}
	return q
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
