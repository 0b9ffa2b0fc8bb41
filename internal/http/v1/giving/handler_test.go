package giving

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
	"github.com/google/go-cmp/cmp"

	appmiddleware "github.com/tkoski/breeze-bridge/internal/middleware"
	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/respond"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

type mockService struct {
	breeze.Service
	funds         []breeze.Fund
	contributions []breeze.Record
	paymentID     string
	err           error

	gotListParams breeze.ContributionListParams
	gotAddParams  breeze.ContributionParams
}

func (m *mockService) ListFunds(_ context.Context, _ breeze.FundListParams) ([]breeze.Fund, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.funds, nil
}

func (m *mockService) ListContributions(_ context.Context, params breeze.ContributionListParams) ([]breeze.Record, error) {
	m.gotListParams = params
	if m.err != nil {
		return nil, m.err
	}
	if params.IncludeFamily && params.PersonID == "" {
		return nil, &breeze.Error{Kind: breeze.ErrorKindBadParameter}
	}
	return m.contributions, nil
}

func (m *mockService) AddContribution(_ context.Context, params breeze.ContributionParams) (string, error) {
	m.gotAddParams = params
	if m.err != nil {
		return "", m.err
	}
	return m.paymentID, nil
}

func (m *mockService) DeleteContribution(_ context.Context, paymentID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return paymentID, nil
}

func newTestRouter(svc breeze.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("GivingTest", "test"))
	Register(api, svc)
	return router
}

// --- ListFunds ---

func TestListFundsSuccess(t *testing.T) {
	svc := &mockService{funds: []breeze.Fund{
		{ID: "201", Name: "General Fund", TaxDeductible: "1", IsDefault: "1"},
		{ID: "202", Name: "Missions", TaxDeductible: "1", IsDefault: "0", Total: "4200.00"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/funds?include_totals=true", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "list-funds-test")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data FundListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 2 {
		t.Fatalf("expected count 2, got %d", data.Count)
	}
	want := Fund{ID: "202", Name: "Missions", TaxDeductible: "1", IsDefault: "0", Total: "4200.00"}
	if diff := cmp.Diff(want, data.Funds[1]); diff != "" {
		t.Errorf("fund mismatch (-want +got):\n%s", diff)
	}
}

func TestListFundsUpstreamError(t *testing.T) {
	svc := &mockService{err: &breeze.Error{Kind: breeze.ErrorKindTransport}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/funds", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}

// --- ListContributions ---

func TestListContributionsSuccess(t *testing.T) {
	svc := &mockService{contributions: []breeze.Record{
		{"id": "9001", "amount": "50.00"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/contributions?start=2024-01-01&end=2024-12-31&fund_ids=201,202", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ContributionListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 1 {
		t.Errorf("expected count 1, got %d", data.Count)
	}

	if got := svc.gotListParams.Start; got != "2024-01-01" {
		t.Errorf("expected start filter to pass through, got %q", got)
	}
	if diff := cmp.Diff([]string{"201", "202"}, svc.gotListParams.FundIDs); diff != "" {
		t.Errorf("fund ids mismatch (-want +got):\n%s", diff)
	}
}

func TestListContributionsFamilyWithoutPerson(t *testing.T) {
	svc := &mockService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/contributions?include_family=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var problem huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if problem.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", problem.Status)
	}
}

func TestListContributionsFamilyWithPerson(t *testing.T) {
	svc := &mockService{contributions: []breeze.Record{{"id": "9001"}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/contributions?include_family=true&person_id=101", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !svc.gotListParams.IncludeFamily || svc.gotListParams.PersonID != "101" {
		t.Errorf("expected family filter with person 101, got %+v", svc.gotListParams)
	}
}

// --- AddContribution ---

func TestAddContributionSuccess(t *testing.T) {
	svc := &mockService{paymentID: "9001"}
	router := newTestRouter(svc)

	body := `{"date":"2024-06-02","person_id":"101","amount":"50.00","method":"Check"}`
	req := httptest.NewRequest(http.MethodPost, "/contributions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ContributionAddData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.PaymentID != "9001" {
		t.Errorf("expected payment id 9001, got %s", data.PaymentID)
	}
	if svc.gotAddParams.Amount != "50.00" {
		t.Errorf("expected amount to pass through, got %q", svc.gotAddParams.Amount)
	}
}

func TestAddContributionMalformedReply(t *testing.T) {
	svc := &mockService{err: &breeze.Error{Kind: breeze.ErrorKindDecode}}
	router := newTestRouter(svc)

	body := `{"date":"2024-06-02","amount":"50.00"}`
	req := httptest.NewRequest(http.MethodPost, "/contributions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}

// --- DeleteContribution ---

func TestDeleteContributionSuccess(t *testing.T) {
	svc := &mockService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/contributions/9001", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ContributionDeleteData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.PaymentID != "9001" {
		t.Errorf("expected payment id 9001, got %s", data.PaymentID)
	}
}

func TestDeleteContributionNotFound(t *testing.T) {
	svc := &mockService{err: &breeze.Error{Kind: breeze.ErrorKindAPI, Status: http.StatusNotFound}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/contributions/9999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

// --- splitList ---

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"201", []string{"201"}},
		{"201,202", []string{"201", "202"}},
		{"201, 202,", []string{"201", "202"}},
		{",", nil},
	}

	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, splitList(tc.in)); diff != "" {
			t.Errorf("splitList(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}
