// Package workforce talks to the workforce-data service: person lookup,
// company demographics and arrival/departure flows.
//
// Contract: every exported operation returns an empty result on a non-2xx
// response or transport failure and never surfaces an error to its caller.
// The assessment orchestrator and the chat tools rely on that.
package workforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// Client is the interface for querying the workforce-data service.
type Client interface {
	FindByName(ctx context.Context, name, company string) []models.Subject
	FindByProfileSlug(ctx context.Context, slug string) []models.Subject
	Demographics(ctx context.Context, companyID string, from, to time.Time) []models.DemographicsRow
	Flows(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow
	FlowsByLevel(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow
	Searcher
}

// Searcher is the generic pass-through used by the chat tools.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) json.RawMessage
}

// SearchRequest is a raw /search body built by callers that need more than
// the canned queries above.
type SearchRequest struct {
	Filters []Filter `json:"filters"`
	Size    int      `json:"size,omitempty"`
}

// Filter is one node of the service's filter tree. Leaves carry Field/Value,
// inner nodes carry Operator/Filters, and a top-level node may attach a report.
type Filter struct {
	Field    string   `json:"field,omitempty"`
	Operator string   `json:"operator,omitempty"`
	Value    any      `json:"value,omitempty"`
	Filters  []Filter `json:"filters,omitempty"`
	Report   *Report  `json:"report,omitempty"`
}

// Report names a server-side aggregation attached to a search.
type Report struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

const (
	reportDemographics = "demographics"
	reportFlows        = "arrivals_departures"
)

// HTTPClient implements Client against the service's JSON-over-HTTPS API.
type HTTPClient struct {
	baseURL string
	orgID   string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a workforce client. An empty apiKey makes every call
// behave as unauthorized and return empty, per the degradation contract.
func NewHTTPClient(baseURL, orgID, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		orgID:   orgID,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// SlugFromProfileURL strips protocol, host and trailing slash from a
// professional-network profile URL, leaving the tail segment.
func SlugFromProfileURL(profileURL string) string {
	s := strings.TrimSpace(profileURL)
	s = strings.TrimSuffix(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

func (c *HTTPClient) FindByName(ctx context.Context, name, company string) []models.Subject {
	fields := []findField{{FieldName: "name", SearchTerm: name}}
	if company != "" {
		fields = append(fields, findField{FieldName: "company", SearchTerm: company})
	}
	return c.find(ctx, fields, 3)
}

func (c *HTTPClient) FindByProfileSlug(ctx context.Context, slug string) []models.Subject {
	return c.find(ctx, []findField{{FieldName: "linkedin", SearchTerm: slug}}, 1)
}

func (c *HTTPClient) find(ctx context.Context, fields []findField, size int) []models.Subject {
	body := findRequest{
		Matches:      []findMatch{{Fields: fields}},
		Size:         size,
		ReturnFields: personReturnFields,
		Confidence:   "high",
	}
	raw, err := c.post(ctx, "/find", body)
	if err != nil {
		slog.Warn("workforce find failed", "error", err)
		return nil
	}

	var resp findResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		slog.Warn("workforce find returned malformed body", "error", err)
		return nil
	}

	var out []models.Subject
	for _, m := range resp.Matches {
		for _, r := range m.Results {
			out = append(out, r.toSubject())
			if len(out) == size {
				return out
			}
		}
	}
	return out
}

func (c *HTTPClient) Demographics(ctx context.Context, companyID string, from, to time.Time) []models.DemographicsRow {
	req := SearchRequest{
		Filters: []Filter{{
			Operator: "and",
			Filters: []Filter{
				companyFilter(companyID),
				{Field: "is_active", Value: true},
			},
			Report: &Report{
				Name: reportDemographics,
				Params: map[string]any{
					"group_by": []string{"function"},
					"from":     from.Format("2006-01-02"),
					"to":       to.Format("2006-01-02"),
				},
			},
		}},
	}

	rows := c.reportRows(ctx, req, reportDemographics)
	var out []models.DemographicsRow
	for _, r := range rows {
		d, err := parseDate(r.Date)
		if err != nil {
			continue
		}
		out = append(out, models.DemographicsRow{
			Date:     d,
			Function: models.Function(r.groupValue()),
			Count:    r.CountEmployees,
		})
	}
	return out
}

func (c *HTTPClient) Flows(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow {
	return c.flows(ctx, companyID, "function", from, to)
}

func (c *HTTPClient) FlowsByLevel(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow {
	return c.flows(ctx, companyID, "level", from, to)
}

func (c *HTTPClient) flows(ctx context.Context, companyID, groupBy string, from, to time.Time) []models.FlowsRow {
	req := SearchRequest{
		Filters: []Filter{{
			Operator: "and",
			Filters:  []Filter{companyFilter(companyID)},
			Report: &Report{
				Name: reportFlows,
				Params: map[string]any{
					"group_by": []string{groupBy},
					"from":     from.Format("2006-01-02"),
					"to":       to.Format("2006-01-02"),
				},
			},
		}},
	}

	rows := c.reportRows(ctx, req, reportFlows)
	var out []models.FlowsRow
	for _, r := range rows {
		out = append(out, models.FlowsRow{
			Group:      r.groupValue(),
			Arrivals:   r.Arrivals,
			Departures: r.Departures,
		})
	}
	return out
}

// Search posts a raw search and returns the results array as-is, empty JSON
// array on failure. Used by the chat tools.
func (c *HTTPClient) Search(ctx context.Context, req SearchRequest) json.RawMessage {
	raw, err := c.post(ctx, "/search", req)
	if err != nil {
		slog.Warn("workforce search failed", "error", err)
		return json.RawMessage("[]")
	}
	var resp struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || len(resp.Results) == 0 {
		return json.RawMessage("[]")
	}
	return resp.Results
}

func (c *HTTPClient) reportRows(ctx context.Context, req SearchRequest, report string) []reportRow {
	raw, err := c.post(ctx, "/search", req)
	if err != nil {
		slog.Warn("workforce report failed", "report", report, "error", err)
		return nil
	}
	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		slog.Warn("workforce report returned malformed body", "report", report, "error", err)
		return nil
	}
	return resp.ReportResults[report]
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.orgID != "" {
		req.Header.Set("X-Org-Id", c.orgID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(raw, 200))
	}
	return raw, nil
}

// companyFilter ORs the plain company identifier against its -group variant
// so subsidiary rollups are covered. Callers above this layer never see it.
func companyFilter(companyID string) Filter {
	return Filter{
		Operator: "or",
		Filters: []Filter{
			{Field: "company.id", Value: companyID},
			{Field: "company.id", Value: companyID + "-group"},
		},
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// --- wire types ---

var personReturnFields = []string{
	"name", "linkedin", "location", "position", "jobs", "education",
}

type findField struct {
	FieldName  string `json:"field_name"`
	SearchTerm string `json:"search_term"`
}

type findMatch struct {
	Fields []findField `json:"fields"`
}

type findRequest struct {
	Matches      []findMatch `json:"matches"`
	Size         int         `json:"size"`
	ReturnFields []string    `json:"return_fields"`
	Confidence   string      `json:"confidence"`
}

type findResponse struct {
	Matches []struct {
		Results []personResult `json:"results"`
	} `json:"matches"`
}

type wireCompany struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type wireJob struct {
	Title     string      `json:"title"`
	Company   wireCompany `json:"company"`
	Function  string      `json:"function"`
	Level     string      `json:"level"`
	StartedAt string      `json:"started_at"`
	EndedAt   string      `json:"ended_at"`
}

type personResult struct {
	Name     string `json:"name"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
	Position struct {
		Title     string      `json:"title"`
		Company   wireCompany `json:"company"`
		StartedAt string      `json:"started_at"`
	} `json:"position"`
	Jobs      []wireJob `json:"jobs"`
	Education []struct {
		School string `json:"school"`
		Degree string `json:"degree"`
	} `json:"education"`
}

func (p personResult) toSubject() models.Subject {
	s := models.Subject{
		Name:             p.Name,
		ProfileURL:       p.LinkedIn,
		Location:         p.Location,
		CurrentTitle:     p.Position.Title,
		CurrentCompany:   p.Position.Company.Name,
		CurrentCompanyID: p.Position.Company.ID,
	}
	for _, j := range p.Jobs {
		job := models.Job{
			Title:     j.Title,
			Company:   j.Company.Name,
			CompanyID: j.Company.ID,
			Function:  models.Function(j.Function),
			Level:     models.Level(j.Level),
		}
		if d, err := parseDate(j.StartedAt); err == nil {
			job.Start = d
		}
		if d, err := parseDate(j.EndedAt); err == nil {
			job.End = d
		}
		s.Jobs = append(s.Jobs, job)
	}

	// Most recent first; current roles ahead of ended ones.
	sort.SliceStable(s.Jobs, func(i, k int) bool {
		a, b := s.Jobs[i], s.Jobs[k]
		if a.Current() != b.Current() {
			return a.Current()
		}
		return a.Start.After(b.Start)
	})

	if len(s.Jobs) > 0 {
		s.CurrentFunction = s.Jobs[0].Function
		s.CurrentLevel = s.Jobs[0].Level
		if s.CurrentTitle == "" {
			s.CurrentTitle = s.Jobs[0].Title
		}
		if s.CurrentCompanyID == "" {
			s.CurrentCompany = s.Jobs[0].Company
			s.CurrentCompanyID = s.Jobs[0].CompanyID
		}
	}

	for _, e := range p.Education {
		s.Education = append(s.Education, models.Education{School: e.School, Degree: e.Degree})
	}
	return s
}

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

type reportRow struct {
	Date        string `json:"date"`
	GroupValues []struct {
		Value string `json:"value"`
	} `json:"group_values"`
	CountEmployees int `json:"count_employees"`
	Arrivals       int `json:"arrivals"`
	Departures     int `json:"departures"`
}

func (r reportRow) groupValue() string {
	if len(r.GroupValues) == 0 {
		return ""
	}
	return r.GroupValues[0].Value
}

type searchResponse struct {
	Results       json.RawMessage        `json:"results"`
	ReportResults map[string][]reportRow `json:"report_results"`
}

// Compile-time check that HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
