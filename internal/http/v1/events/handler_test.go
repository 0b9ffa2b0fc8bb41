package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/tkoski/breeze-bridge/internal/middleware"
	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/respond"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

type mockService struct {
	breeze.Service
	events     []breeze.Record
	calendars  []breeze.Record
	attendance []breeze.Record
	checkInOK  bool
	err        error

	gotEventParams breeze.EventListParams
	gotPersonID    string
	gotInstanceID  string
}

func (m *mockService) ListEvents(_ context.Context, params breeze.EventListParams) ([]breeze.Record, error) {
	m.gotEventParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockService) ListCalendars(_ context.Context) ([]breeze.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.calendars, nil
}

func (m *mockService) ListAttendance(_ context.Context, instanceID string, _ bool) ([]breeze.Record, error) {
	m.gotInstanceID = instanceID
	if m.err != nil {
		return nil, m.err
	}
	return m.attendance, nil
}

func (m *mockService) EventCheckIn(_ context.Context, personID, instanceID string) (bool, error) {
	m.gotPersonID = personID
	m.gotInstanceID = instanceID
	if m.err != nil {
		return false, m.err
	}
	return m.checkInOK, nil
}

func (m *mockService) EventCheckOut(_ context.Context, personID, instanceID string) (bool, error) {
	m.gotPersonID = personID
	m.gotInstanceID = instanceID
	if m.err != nil {
		return false, m.err
	}
	return m.checkInOK, nil
}

func newTestRouter(svc breeze.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("EventsTest", "test"))
	Register(api, svc)
	return router
}

// --- ListEvents ---

func TestListEventsSuccess(t *testing.T) {
	svc := &mockService{events: []breeze.Record{
		{
			"id":             "501",
			"event_id":       "42",
			"name":           "Sunday Service",
			"category_id":    "1",
			"start_datetime": "2024-06-02 10:00:00",
			"end_datetime":   "2024-06-02 11:30:00",
		},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events?start=2024-06-01&end=2024-06-30", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "list-events-test")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data EventListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 1 {
		t.Fatalf("expected count 1, got %d", data.Count)
	}
	event := data.Events[0]
	if event.Name != "Sunday Service" {
		t.Errorf("expected name Sunday Service, got %s", event.Name)
	}
	if event.Starts == nil {
		t.Fatal("expected start time to be parsed")
	}
	if got := event.Starts.Format("2006-01-02 15:04:05"); got != "2024-06-02 10:00:00" {
		t.Errorf("expected start 2024-06-02 10:00:00, got %s", got)
	}
	if svc.gotEventParams.Start != "2024-06-01" {
		t.Errorf("expected start filter to pass through, got %q", svc.gotEventParams.Start)
	}
}

func TestListEventsToleratesBadTimestamps(t *testing.T) {
	svc := &mockService{events: []breeze.Record{
		{"id": "501", "name": "Picnic", "start_datetime": "not a time"},
		{"id": "502", "name": "Setup", "start_datetime": "0000-00-00 00:00:00"},
		{"id": float64(503), "name": "Numeric"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data EventListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 3 {
		t.Fatalf("expected all 3 events returned, got %d", data.Count)
	}
	if data.Events[0].Starts != nil {
		t.Errorf("expected unparseable start to be null, got %v", data.Events[0].Starts)
	}
	if data.Events[1].Starts != nil {
		t.Errorf("expected zero-valued start to be null, got %v", data.Events[1].Starts)
	}
	if data.Events[2].ID != "503" {
		t.Errorf("expected numeric id rendered as 503, got %s", data.Events[2].ID)
	}
}

func TestListEventsUpstreamError(t *testing.T) {
	svc := &mockService{err: &breeze.Error{Kind: breeze.ErrorKindTransport}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}

// --- ListCalendars ---

func TestListCalendarsSuccess(t *testing.T) {
	svc := &mockService{calendars: []breeze.Record{
		{"id": "1", "name": "Main"},
		{"id": "2", "name": "Youth"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/calendars", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data CalendarListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Calendars) != 2 {
		t.Fatalf("expected 2 calendars, got %d", len(data.Calendars))
	}
	if data.Calendars[1].Name != "Youth" {
		t.Errorf("expected calendar Youth, got %s", data.Calendars[1].Name)
	}
}

// --- ListAttendance ---

func TestListAttendanceSuccess(t *testing.T) {
	svc := &mockService{attendance: []breeze.Record{
		{"person_id": "101", "check_out": "0000-00-00 00:00:00"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events/501/attendance?details=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data AttendanceListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 1 {
		t.Errorf("expected count 1, got %d", data.Count)
	}
	if svc.gotInstanceID != "501" {
		t.Errorf("expected instance 501, got %q", svc.gotInstanceID)
	}
}

// --- Check-in / check-out ---

func TestCheckInSuccess(t *testing.T) {
	svc := &mockService{checkInOK: true}
	router := newTestRouter(svc)

	body := `{"person_id":"101"}`
	req := httptest.NewRequest(http.MethodPost, "/events/501/check-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data AttendanceData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !data.Success {
		t.Error("expected success true")
	}
	if svc.gotPersonID != "101" || svc.gotInstanceID != "501" {
		t.Errorf("expected person 101 at instance 501, got %q at %q", svc.gotPersonID, svc.gotInstanceID)
	}
}

func TestCheckInDeclined(t *testing.T) {
	svc := &mockService{checkInOK: false}
	router := newTestRouter(svc)

	body := `{"person_id":"101"}`
	req := httptest.NewRequest(http.MethodPost, "/events/501/check-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with success false, got %d: %s", resp.Code, resp.Body.String())
	}

	var data AttendanceData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Success {
		t.Error("expected success false when Breeze declines the check-in")
	}
}

func TestCheckOutSuccess(t *testing.T) {
	svc := &mockService{checkInOK: true}
	router := newTestRouter(svc)

	body := `{"person_id":"101"}`
	req := httptest.NewRequest(http.MethodPost, "/events/501/check-out", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotInstanceID != "501" {
		t.Errorf("expected instance 501, got %q", svc.gotInstanceID)
	}
}

func TestCheckInUpstreamError(t *testing.T) {
	svc := &mockService{err: &breeze.Error{Kind: breeze.ErrorKindAPI, Status: http.StatusBadRequest}}
	router := newTestRouter(svc)

	body := `{"person_id":"101"}`
	req := httptest.NewRequest(http.MethodPost, "/events/501/check-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}
