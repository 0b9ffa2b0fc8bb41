package breeze

import (
	"context"
	"fmt"
	"strconv"
)

// MockBreezeService implements Service for unit tests and local development
// with pre-populated demo data.
type MockBreezeService struct {
	people        map[string]Record
	peopleOrder   []string
	profileFields []any
	events        map[string]Record
	eventsOrder   []string
	attendance    map[string]map[string]bool
	contributions map[string]Record
	nextPaymentID int
	funds         []Fund
	tags          []Tag
	tagFolders    []TagFolder
	personTags    map[string]map[string]bool
}

// NewMockBreezeService creates a mock pre-populated with a small demo
// congregation.
func NewMockBreezeService() *MockBreezeService {
	m := &MockBreezeService{
		people: map[string]Record{
			"101": {
				"id":         "101",
				"first_name": "Alex",
				"last_name":  "Ortiz",
				"nick_name":  "",
				"details": map[string]any{
					"street_address": "123 Main St<br>Apt 4",
					"city":           "Springfield",
					"state":          "IL",
					"zip":            "62701",
				},
			},
			"102": {
				"id":         "102",
				"first_name": "Katherine",
				"last_name":  "Nguyen",
				"nick_name":  "Kate",
				"details":    map[string]any{},
			},
		},
		peopleOrder: []string{"101", "102"},
		profileFields: []any{
			map[string]any{
				"name": "Main",
				"fields": []any{
					map[string]any{"field_id": "f-phone", "name": "Phone", "field_type": "phone"},
					map[string]any{"field_id": "f-email", "name": "Email", "field_type": "email"},
				},
			},
		},
		events: map[string]Record{
			"501": {
				"id":       "501",
				"name":     "Sunday Service",
				"start":    "2024-06-02 10:00:00",
				"event_id": "41",
			},
		},
		eventsOrder:   []string{"501"},
		attendance:    map[string]map[string]bool{},
		contributions: map[string]Record{},
		nextPaymentID: 9000,
		funds: []Fund{
			{ID: "201", Name: "General Fund", TaxDeductible: "1", IsDefault: "1", CreatedOn: "2020-01-01 00:00:00"},
			{ID: "202", Name: "Missions", TaxDeductible: "1", IsDefault: "0", CreatedOn: "2021-03-15 00:00:00"},
		},
		tags: []Tag{
			{ID: "301", Name: "Volunteers", FolderID: "401", CreatedOn: "2020-01-01 00:00:00"},
		},
		tagFolders: []TagFolder{
			{ID: "401", ParentID: "0", Name: "Ministry", CreatedOn: "2020-01-01 00:00:00"},
		},
		personTags: map[string]map[string]bool{},
	}
	return m
}

func (m *MockBreezeService) AccountSummary(_ context.Context) (Record, error) {
	return Record{
		"id":   "1",
		"name": "Demo Church",
		"details": map[string]any{
			"timezone": "America/Chicago",
			"country":  map[string]any{"id": "2", "name": "United States of America"},
		},
	}, nil
}

func (m *MockBreezeService) ListPeople(_ context.Context, params PeopleListParams) ([]Record, error) {
	people := make([]Record, 0, len(m.peopleOrder))
	for _, id := range m.peopleOrder {
		person := m.people[id]
		if !params.Details {
			person = Record{
				"id":         person["id"],
				"first_name": person["first_name"],
				"last_name":  person["last_name"],
			}
		}
		people = append(people, person)
	}
	if params.Offset > 0 {
		if params.Offset >= len(people) {
			return []Record{}, nil
		}
		people = people[params.Offset:]
	}
	if params.Limit > 0 && params.Limit < len(people) {
		people = people[:params.Limit]
	}
	return people, nil
}

func (m *MockBreezeService) GetPersonDetails(_ context.Context, personID string) (Record, error) {
	person, ok := m.people[personID]
	if !ok {
		return nil, &Error{Kind: ErrorKindAPI, Endpoint: endpointPeople, cause: ErrAPI}
	}
	return person, nil
}

func (m *MockBreezeService) AddPerson(_ context.Context, params AddPersonParams) ([]Record, error) {
	id := strconv.Itoa(100 + len(m.people) + 1)
	person := Record{
		"id":         id,
		"first_name": params.FirstName,
		"last_name":  params.LastName,
		"details":    map[string]any{},
	}
	m.people[id] = person
	m.peopleOrder = append(m.peopleOrder, id)
	return []Record{person}, nil
}

func (m *MockBreezeService) UpdatePerson(_ context.Context, personID, _ string) ([]Record, error) {
	person, ok := m.people[personID]
	if !ok {
		return nil, &Error{Kind: ErrorKindAPI, Endpoint: endpointPeople, cause: ErrAPI}
	}
	return []Record{person}, nil
}

func (m *MockBreezeService) GetProfileFields(_ context.Context) ([]any, error) {
	return m.profileFields, nil
}

func (m *MockBreezeService) ListEvents(_ context.Context, _ EventListParams) ([]Record, error) {
	events := make([]Record, 0, len(m.eventsOrder))
	for _, id := range m.eventsOrder {
		events = append(events, m.events[id])
	}
	return events, nil
}

func (m *MockBreezeService) GetEvent(_ context.Context, instanceID string) (Record, error) {
	event, ok := m.events[instanceID]
	if !ok {
		return nil, &Error{Kind: ErrorKindAPI, Endpoint: endpointEvents, cause: ErrAPI}
	}
	return event, nil
}

func (m *MockBreezeService) ListCalendars(_ context.Context) ([]Record, error) {
	return []Record{{"id": "41", "name": "Main Calendar"}}, nil
}

func (m *MockBreezeService) AddEvent(_ context.Context, params AddEventParams) ([]Record, error) {
	id := strconv.Itoa(500 + len(m.events) + 1)
	event := Record{"id": id, "name": params.Name, "start": params.StartsOn}
	m.events[id] = event
	m.eventsOrder = append(m.eventsOrder, id)
	return []Record{event}, nil
}

func (m *MockBreezeService) EventCheckIn(_ context.Context, personID, instanceID string) (bool, error) {
	if _, ok := m.events[instanceID]; !ok {
		return false, nil
	}
	if m.attendance[instanceID] == nil {
		m.attendance[instanceID] = map[string]bool{}
	}
	m.attendance[instanceID][personID] = true
	return true, nil
}

func (m *MockBreezeService) EventCheckOut(_ context.Context, personID, instanceID string) (bool, error) {
	present := m.attendance[instanceID]
	if !present[personID] {
		return false, nil
	}
	present[personID] = false
	return true, nil
}

func (m *MockBreezeService) DeleteAttendance(_ context.Context, personID, instanceID string) (bool, error) {
	present := m.attendance[instanceID]
	if _, ok := present[personID]; !ok {
		return false, nil
	}
	delete(present, personID)
	return true, nil
}

func (m *MockBreezeService) ListAttendance(_ context.Context, instanceID string, details bool) ([]Record, error) {
	var records []Record
	for personID := range m.attendance[instanceID] {
		record := Record{"person_id": personID, "instance_id": instanceID, "check_out": "0000-00-00 00:00:00"}
		if details {
			record["details"] = m.people[personID]
		}
		records = append(records, record)
	}
	return records, nil
}

func (m *MockBreezeService) ListEligiblePeople(_ context.Context, instanceID string) ([]Record, error) {
	if _, ok := m.events[instanceID]; !ok {
		return nil, &Error{Kind: ErrorKindAPI, Endpoint: endpointEvents, cause: ErrAPI}
	}
	var records []Record
	for _, id := range m.peopleOrder {
		person := m.people[id]
		records = append(records, Record{
			"id":         id,
			"first_name": person["first_name"],
			"last_name":  person["last_name"],
		})
	}
	return records, nil
}

func (m *MockBreezeService) AddContribution(_ context.Context, params ContributionParams) (string, error) {
	m.nextPaymentID++
	id := strconv.Itoa(m.nextPaymentID)
	m.contributions[id] = Record{
		"payment_id": id,
		"person_id":  params.PersonID,
		"amount":     params.Amount,
		"date":       params.Date,
		"method":     params.Method,
	}
	return id, nil
}

func (m *MockBreezeService) EditContribution(_ context.Context, params ContributionParams) (string, error) {
	if _, ok := m.contributions[params.PaymentID]; !ok {
		return "", &Error{Kind: ErrorKindAPI, Endpoint: endpointContributions, cause: ErrAPI}
	}
	// Breeze replaces the payment on edit and assigns a fresh id.
	delete(m.contributions, params.PaymentID)
	return m.AddContribution(context.Background(), params)
}

func (m *MockBreezeService) DeleteContribution(_ context.Context, paymentID string) (string, error) {
	if _, ok := m.contributions[paymentID]; !ok {
		return "", &Error{Kind: ErrorKindAPI, Endpoint: endpointContributions, cause: ErrAPI}
	}
	delete(m.contributions, paymentID)
	return paymentID, nil
}

func (m *MockBreezeService) ListContributions(_ context.Context, params ContributionListParams) ([]Record, error) {
	if params.IncludeFamily && params.PersonID == "" {
		return nil, &Error{
			Kind:     ErrorKindBadParameter,
			Endpoint: endpointContributions,
			cause:    fmt.Errorf("%w: IncludeFamily requires PersonID", ErrBadParameter),
		}
	}
	var records []Record
	for _, c := range m.contributions {
		if params.PersonID != "" && c["person_id"] != params.PersonID {
			continue
		}
		records = append(records, c)
	}
	return records, nil
}

func (m *MockBreezeService) ListFunds(_ context.Context, params FundListParams) ([]Fund, error) {
	funds := make([]Fund, len(m.funds))
	copy(funds, m.funds)
	if params.IncludeTotals {
		for i := range funds {
			funds[i].Total = "0.00"
		}
	}
	return funds, nil
}

func (m *MockBreezeService) ListCampaigns(_ context.Context) ([]Record, error) {
	return []Record{{"id": "601", "name": "Building Campaign"}}, nil
}

func (m *MockBreezeService) ListPledges(_ context.Context, campaignID string) ([]Record, error) {
	if campaignID != "601" {
		return []Record{}, nil
	}
	return []Record{{"id": "701", "campaign_id": campaignID, "person_id": "101", "amount": "1200.00"}}, nil
}

func (m *MockBreezeService) ListTags(_ context.Context, params TagListParams) ([]Tag, error) {
	var tags []Tag
	for _, tag := range m.tags {
		if params.FolderID != "" && tag.FolderID != params.FolderID {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (m *MockBreezeService) ListTagFolders(_ context.Context) ([]TagFolder, error) {
	return m.tagFolders, nil
}

func (m *MockBreezeService) AssignTag(_ context.Context, personID, tagID string) (bool, error) {
	if _, ok := m.people[personID]; !ok {
		return false, nil
	}
	if m.personTags[personID] == nil {
		m.personTags[personID] = map[string]bool{}
	}
	m.personTags[personID][tagID] = true
	return true, nil
}

func (m *MockBreezeService) UnassignTag(_ context.Context, personID, tagID string) (bool, error) {
	if !m.personTags[personID][tagID] {
		return false, nil
	}
	delete(m.personTags[personID], tagID)
	return true, nil
}

func (m *MockBreezeService) ListFormEntries(_ context.Context, formID string, _ bool) ([]Record, error) {
	return []Record{{"id": "801", "form_id": formID, "person_id": "101"}}, nil
}

func (m *MockBreezeService) ListFormFields(_ context.Context, formID string) ([]Record, error) {
	return []Record{{"id": "811", "form_id": formID, "name": "Comments", "field_type": "textarea"}}, nil
}

func (m *MockBreezeService) RemoveFormEntry(_ context.Context, entryID string) (bool, error) {
	return entryID == "801", nil
}

// Compile-time interface check
var _ Service = (*MockBreezeService)(nil)
