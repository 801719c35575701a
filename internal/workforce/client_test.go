package workforce

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// --- helpers ---

func newTestClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	return NewHTTPClient(baseURL, "org-1", "test-key", 5*time.Second)
}

func captureBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("reading request body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshaling request body: %v", err)
	}
	return body
}

// --- SlugFromProfileURL tests ---

func TestSlugFromProfileURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://www.linkedin.com/in/jane-doe-123", "jane-doe-123"},
		{"https://www.linkedin.com/in/jane-doe-123/", "jane-doe-123"},
		{"jane-doe-123", "jane-doe-123"},
		{"  https://linkedin.com/in/x/  ", "x"},
	}
	for _, tt := range tests {
		if got := SlugFromProfileURL(tt.input); got != tt.expected {
			t.Errorf("SlugFromProfileURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// --- FindByName tests ---

func TestFindByName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}
		if got := r.Header.Get("X-Org-Id"); got != "org-1" {
			t.Errorf("unexpected org header: %s", got)
		}

		body := captureBody(t, r)
		if body["confidence"] != "high" {
			t.Errorf("confidence = %v, want high", body["confidence"])
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"matches": [{"results": [{
				"name": "Jane Doe",
				"linkedin": "jane-doe-123",
				"location": "Boston, MA",
				"position": {"title": "Account Executive", "company": {"name": "Acme", "id": "acme"}},
				"jobs": [
					{"title": "Account Executive", "company": {"name": "Acme", "id": "acme"},
					 "function": "Sales and Support", "level": "Staff", "started_at": "2022-03-01"},
					{"title": "SDR", "company": {"name": "Initech", "id": "initech"},
					 "function": "Sales and Support", "level": "Staff",
					 "started_at": "2020-01-01", "ended_at": "2022-02-01"}
				],
				"education": [{"school": "Boston University", "degree": "BA"}]
			}]}]
		}`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	subjects := c.FindByName(context.Background(), "Jane Doe", "Acme")
	if len(subjects) != 1 {
		t.Fatalf("got %d subjects, want 1", len(subjects))
	}

	s := subjects[0]
	if s.Name != "Jane Doe" || s.CurrentCompanyID != "acme" {
		t.Errorf("unexpected subject: %+v", s)
	}
	if s.CurrentFunction != "Sales and Support" || s.CurrentLevel != "Staff" {
		t.Errorf("current function/level not derived from jobs: %+v", s)
	}
	if len(s.Jobs) != 2 || s.Jobs[0].Company != "Acme" {
		t.Errorf("jobs not sorted current-first: %+v", s.Jobs)
	}
	if s.Jobs[1].End.IsZero() {
		t.Error("ended_at not parsed")
	}
}

func TestFind_AbsorbsServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if got := c.FindByName(context.Background(), "Jane", ""); got != nil {
		t.Errorf("expected nil on 502, got %+v", got)
	}
}

func TestFind_AbsorbsTransportError(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	if got := c.FindByProfileSlug(context.Background(), "jane"); got != nil {
		t.Errorf("expected nil on connection failure, got %+v", got)
	}
}

func TestFind_MissingAPIKeyReturnsEmpty(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, "", "", 5*time.Second)
	if got := c.FindByName(context.Background(), "Jane", ""); got != nil {
		t.Errorf("expected nil without key, got %+v", got)
	}
	if called {
		t.Error("client should not call upstream without a key")
	}
}

// --- Demographics / Flows tests ---

func TestDemographics_CompanyGroupVariant(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body = captureBody(t, r)
		io.WriteString(w, `{"report_results": {"demographics": [
			{"date": "2025-01-01", "group_values": [{"value": "Engineering"}], "count_employees": 120},
			{"date": "2025-01-01", "group_values": [{"value": "Sales and Support"}], "count_employees": 80}
		]}}`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	rows := c.Demographics(context.Background(), "acme",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Function != "Engineering" || rows[0].Count != 120 {
		t.Errorf("unexpected row: %+v", rows[0])
	}

	// The company filter must OR the plain id with its -group variant.
	raw, _ := json.Marshal(body)
	for _, want := range []string{`"acme"`, `"acme-group"`, `"operator":"or"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("request body missing %s: %s", want, raw)
		}
	}
}

func TestFlows(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := captureBody(t, r)
		raw, _ := json.Marshal(body)
		if !strings.Contains(string(raw), `"arrivals_departures"`) {
			t.Errorf("flows request missing report name: %s", raw)
		}
		io.WriteString(w, `{"report_results": {"arrivals_departures": [
			{"group_values": [{"value": "Sales and Support"}], "arrivals": 10, "departures": 8}
		]}}`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	rows := c.Flows(context.Background(), "acme",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Group != "Sales and Support" || rows[0].Arrivals != 10 || rows[0].Departures != 8 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestFlows_AbsorbsMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{not json`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	rows := c.Flows(context.Background(), "acme", time.Now().AddDate(0, -12, 0), time.Now())
	if rows != nil {
		t.Errorf("expected nil on malformed body, got %+v", rows)
	}
}

// --- Search tests ---

func TestSearch_ReturnsRawResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"results": [{"name": "Someone"}]}`)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	got := c.Search(context.Background(), SearchRequest{Size: 5})
	if string(got) != `[{"name": "Someone"}]` {
		t.Errorf("unexpected raw results: %s", got)
	}
}

func TestSearch_EmptyArrayOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	if got := c.Search(context.Background(), SearchRequest{}); string(got) != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

// --- parseDate tests ---

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-02-17", true},
		{"2024-02", true},
		{"2024-02-17T10:00:00Z", true},
		{"", false},
		{"yesterday", false},
	}
	for _, tt := range tests {
		_, err := parseDate(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseDate(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
		}
	}
}
