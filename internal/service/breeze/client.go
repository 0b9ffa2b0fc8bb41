package breeze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
)

const (
	userAgent      = "breeze-bridge"
	apiKeyHeader   = "Api-Key"
	defaultTimeout = 60 * time.Second
)

// Endpoint groups of the Breeze REST API.
const (
	endpointAccount       = "account"
	endpointPeople        = "people"
	endpointProfileFields = "profile"
	endpointEvents        = "events"
	endpointContributions = "giving"
	endpointFunds         = "funds"
	endpointPledges       = "pledges"
	endpointTags          = "tags"
	endpointForms         = "forms"
)

// Client implements Service against a live Breeze account.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the validated account URL (useful for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// New creates a Breeze client for the given account URL and API key. The
// URL must be the https address of the account subdomain, e.g.
// "https://demo.breezechms.com"; construction fails with an ErrConfig-kinded
// error otherwise.
func New(breezeURL, apiKey string, opts ...Option) (*Client, error) {
	if err := validateAccountURL(breezeURL); err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, configError("an API key is required")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(breezeURL, "/"),
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func validateAccountURL(breezeURL string) error {
	if breezeURL == "" {
		return configError("an account URL is required, e.g. https://subdomain.breezechms.com")
	}
	u, err := url.Parse(breezeURL)
	if err != nil {
		return configError("account URL is not a valid URL")
	}
	if u.Scheme != "https" {
		return configError("account URL must use https")
	}
	if !strings.Contains(u.Host, ".breezechms.") {
		return configError("account URL must be a .breezechms.com subdomain")
	}
	return nil
}

func configError(msg string) error {
	return &Error{Kind: ErrorKindConfig, cause: fmt.Errorf("%w: %s", ErrConfig, msg)}
}

// request issues a GET against /api/{endpoint}/{command}?{query} and
// returns the decoded JSON body. Breeze signals failure in-band: any object
// carrying "errors" or "errorCode" is an error regardless of HTTP status,
// and a boolean body is a legitimate result (several write operations reply
// with bare true/false).
func (c *Client) request(ctx context.Context, endpoint, command string, query url.Values) (any, error) {
	u := c.baseURL + "/api/" + endpoint
	if command != "" {
		u += "/" + command
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Endpoint: endpoint, cause: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Endpoint: endpoint, cause: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Endpoint: endpoint, Status: resp.StatusCode, cause: fmt.Errorf("%w: %v", ErrTransport, err)}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &Error{Kind: ErrorKindDecode, Endpoint: endpoint, Status: resp.StatusCode, cause: fmt.Errorf("%w: %v", ErrDecode, err)}
	}

	if payload, failed := apiFailure(decoded); failed || resp.StatusCode >= 400 {
		applog.LogWarn(ctx, "breeze api call failed",
			zap.String("endpoint", endpoint),
			zap.String("command", command),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &Error{Kind: ErrorKindAPI, Endpoint: endpoint, Status: resp.StatusCode, Payload: payload, cause: ErrAPI}
	}
	return decoded, nil
}

// apiFailure reports whether a decoded body is an in-band error reply.
func apiFailure(decoded any) (payload any, failed bool) {
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, false
	}
	if _, ok := m["errors"]; ok {
		return m, true
	}
	if _, ok := m["errorCode"]; ok {
		return m, true
	}
	return nil, false
}

// requestInto decodes the response body into target via a JSON round trip,
// so list endpoints get typed slices without per-field copying.
func (c *Client) requestInto(ctx context.Context, endpoint, command string, query url.Values, target any) error {
	decoded, err := c.request(ctx, endpoint, command, query)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(decoded)
	if err != nil {
		return &Error{Kind: ErrorKindDecode, Endpoint: endpoint, cause: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &Error{Kind: ErrorKindDecode, Endpoint: endpoint, cause: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	return nil
}

// requestBool is for operations whose reply is a bare boolean. A false
// reply is an unsuccessful result, not an error.
func (c *Client) requestBool(ctx context.Context, endpoint, command string, query url.Values) (bool, error) {
	decoded, err := c.request(ctx, endpoint, command, query)
	if err != nil {
		return false, err
	}
	switch v := decoded.(type) {
	case bool:
		return v, nil
	case map[string]any:
		if success, ok := v["success"].(bool); ok {
			return success, nil
		}
		return true, nil
	default:
		return false, &Error{Kind: ErrorKindDecode, Endpoint: endpoint, cause: fmt.Errorf("%w: expected boolean reply, got %T", ErrDecode, decoded)}
	}
}

func (c *Client) requestRecord(ctx context.Context, endpoint, command string, query url.Values) (Record, error) {
	var out Record
	if err := c.requestInto(ctx, endpoint, command, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) requestRecords(ctx context.Context, endpoint, command string, query url.Values) ([]Record, error) {
	var out []Record
	if err := c.requestInto(ctx, endpoint, command, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountSummary retrieves account details; also a cheap way to verify the
// configured URL and key.
func (c *Client) AccountSummary(ctx context.Context) (Record, error) {
	return c.requestRecord(ctx, endpointAccount, "summary", nil)
}

// ListPeople lists people from the account database.
func (c *Client) ListPeople(ctx context.Context, params PeopleListParams) ([]Record, error) {
	q, err := params.values()
	if err != nil {
		return nil, &Error{Kind: ErrorKindBadParameter, Endpoint: endpointPeople, cause: fmt.Errorf("%w: %v", ErrBadParameter, err)}
	}
	return c.requestRecords(ctx, endpointPeople, "", q)
}

// GetPersonDetails retrieves the full record for one person.
func (c *Client) GetPersonDetails(ctx context.Context, personID string) (Record, error) {
	return c.requestRecord(ctx, endpointPeople, url.PathEscape(personID), nil)
}

// AddPerson creates a person record.
func (c *Client) AddPerson(ctx context.Context, params AddPersonParams) ([]Record, error) {
	return c.requestRecords(ctx, endpointPeople, "add", params.values())
}

// UpdatePerson updates profile fields for one person. fieldsJSON uses the
// remote fields_json encoding; empty means "no field changes".
func (c *Client) UpdatePerson(ctx context.Context, personID, fieldsJSON string) ([]Record, error) {
	if fieldsJSON == "" {
		fieldsJSON = "[]"
	}
	q := url.Values{}
	q.Set("person_id", personID)
	q.Set("fields_json", fieldsJSON)
	return c.requestRecords(ctx, endpointPeople, "update", q)
}

// GetProfileFields retrieves the account's profile field configuration.
func (c *Client) GetProfileFields(ctx context.Context) ([]any, error) {
	var out []any
	if err := c.requestInto(ctx, endpointProfileFields, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEvents lists calendar events.
func (c *Client) ListEvents(ctx context.Context, params EventListParams) ([]Record, error) {
	return c.requestRecords(ctx, endpointEvents, "", params.values())
}

// GetEvent retrieves one event instance.
func (c *Client) GetEvent(ctx context.Context, instanceID string) (Record, error) {
	q := url.Values{}
	q.Set("instance_id", instanceID)
	return c.requestRecord(ctx, endpointEvents, "list_event", q)
}

// ListCalendars lists the account's calendars.
func (c *Client) ListCalendars(ctx context.Context) ([]Record, error) {
	return c.requestRecords(ctx, endpointEvents, "calendars/list", nil)
}

// AddEvent creates a calendar event.
func (c *Client) AddEvent(ctx context.Context, params AddEventParams) ([]Record, error) {
	return c.requestRecords(ctx, endpointEvents, "add", params.values())
}

func attendanceQuery(personID, instanceID, direction string) url.Values {
	q := url.Values{}
	q.Set("person_id", personID)
	q.Set("instance_id", instanceID)
	if direction != "" {
		q.Set("direction", direction)
	}
	return q
}

// EventCheckIn checks a person into an event instance.
func (c *Client) EventCheckIn(ctx context.Context, personID, instanceID string) (bool, error) {
	return c.requestBool(ctx, endpointEvents, "attendance/add", attendanceQuery(personID, instanceID, "in"))
}

// EventCheckOut records a person leaving an event instance. The remote
// models check-out as an attendance addition with the opposite direction.
func (c *Client) EventCheckOut(ctx context.Context, personID, instanceID string) (bool, error) {
	return c.requestBool(ctx, endpointEvents, "attendance/add", attendanceQuery(personID, instanceID, "out"))
}

// DeleteAttendance removes a person's attendance record for an instance.
func (c *Client) DeleteAttendance(ctx context.Context, personID, instanceID string) (bool, error) {
	return c.requestBool(ctx, endpointEvents, "attendance/delete", attendanceQuery(personID, instanceID, ""))
}

// ListAttendance lists attendance for an event instance.
func (c *Client) ListAttendance(ctx context.Context, instanceID string, details bool) ([]Record, error) {
	q := url.Values{}
	q.Set("instance_id", instanceID)
	if details {
		q.Set("details", "true")
	}
	return c.requestRecords(ctx, endpointEvents, "attendance/list", q)
}

// ListEligiblePeople lists people eligible to check into an instance.
func (c *Client) ListEligiblePeople(ctx context.Context, instanceID string) ([]Record, error) {
	q := url.Values{}
	q.Set("instance_id", instanceID)
	return c.requestRecords(ctx, endpointEvents, "attendance/eligible", q)
}

// AddContribution records a contribution and returns the new payment id.
func (c *Client) AddContribution(ctx context.Context, params ContributionParams) (string, error) {
	return c.paymentRequest(ctx, "add", params.values())
}

// EditContribution modifies an existing contribution and returns its
// payment id.
func (c *Client) EditContribution(ctx context.Context, params ContributionParams) (string, error) {
	return c.paymentRequest(ctx, "edit", params.values())
}

// DeleteContribution removes a contribution and returns its payment id.
func (c *Client) DeleteContribution(ctx context.Context, paymentID string) (string, error) {
	q := url.Values{}
	q.Set("payment_id", paymentID)
	return c.paymentRequest(ctx, "delete", q)
}

func (c *Client) paymentRequest(ctx context.Context, command string, query url.Values) (string, error) {
	record, err := c.requestRecord(ctx, endpointContributions, command, query)
	if err != nil {
		return "", err
	}
	switch id := record["payment_id"].(type) {
	case string:
		return id, nil
	case float64:
		return fmt.Sprintf("%.0f", id), nil
	default:
		return "", &Error{Kind: ErrorKindDecode, Endpoint: endpointContributions, cause: fmt.Errorf("%w: reply is missing payment_id", ErrDecode)}
	}
}

// ListContributions retrieves contributions matching the given filters.
// IncludeFamily widens a person filter to their family and therefore
// requires PersonID.
func (c *Client) ListContributions(ctx context.Context, params ContributionListParams) ([]Record, error) {
	if params.IncludeFamily && params.PersonID == "" {
		return nil, &Error{
			Kind:     ErrorKindBadParameter,
			Endpoint: endpointContributions,
			cause:    fmt.Errorf("%w: IncludeFamily requires PersonID", ErrBadParameter),
		}
	}
	return c.requestRecords(ctx, endpointContributions, "list", params.values())
}

// ListFunds lists giving funds. The zero params value lists all funds
// without totals.
func (c *Client) ListFunds(ctx context.Context, params FundListParams) ([]Fund, error) {
	var out []Fund
	if err := c.requestInto(ctx, endpointFunds, "list", params.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCampaigns lists pledge campaigns.
func (c *Client) ListCampaigns(ctx context.Context) ([]Record, error) {
	return c.requestRecords(ctx, endpointPledges, "list_campaigns", nil)
}

// ListPledges lists pledges within a campaign.
func (c *Client) ListPledges(ctx context.Context, campaignID string) ([]Record, error) {
	q := url.Values{}
	q.Set("campaign_id", campaignID)
	return c.requestRecords(ctx, endpointPledges, "list_pledges", q)
}

// ListTags lists tags, optionally restricted to one folder.
func (c *Client) ListTags(ctx context.Context, params TagListParams) ([]Tag, error) {
	var out []Tag
	if err := c.requestInto(ctx, endpointTags, "list_tags", params.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTagFolders lists tag folders.
func (c *Client) ListTagFolders(ctx context.Context) ([]TagFolder, error) {
	var out []TagFolder
	if err := c.requestInto(ctx, endpointTags, "list_folders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func tagQuery(personID, tagID string) url.Values {
	q := url.Values{}
	q.Set("person_id", personID)
	q.Set("tag_id", tagID)
	return q
}

// AssignTag adds a tag to a person.
func (c *Client) AssignTag(ctx context.Context, personID, tagID string) (bool, error) {
	return c.requestBool(ctx, endpointTags, "assign", tagQuery(personID, tagID))
}

// UnassignTag removes a tag from a person.
func (c *Client) UnassignTag(ctx context.Context, personID, tagID string) (bool, error) {
	return c.requestBool(ctx, endpointTags, "unassign", tagQuery(personID, tagID))
}

// ListFormEntries lists submitted entries for a form.
func (c *Client) ListFormEntries(ctx context.Context, formID string, details bool) ([]Record, error) {
	q := url.Values{}
	q.Set("form_id", formID)
	if details {
		q.Set("details", "1")
	}
	return c.requestRecords(ctx, endpointForms, "list_form_entries", q)
}

// ListFormFields lists the field layout of a form.
func (c *Client) ListFormFields(ctx context.Context, formID string) ([]Record, error) {
	q := url.Values{}
	q.Set("form_id", formID)
	return c.requestRecords(ctx, endpointForms, "list_form_fields", q)
}

// RemoveFormEntry deletes one submitted form entry.
func (c *Client) RemoveFormEntry(ctx context.Context, entryID string) (bool, error) {
	q := url.Values{}
	q.Set("entry_id", entryID)
	return c.requestBool(ctx, endpointForms, "remove_form_entry", q)
}

// Compile-time interface check
var _ Service = (*Client)(nil)
