package chat

import (
	"context"
	"encoding/json"

	"github.com/amoghpatel/careerisk/internal/llm"
	"github.com/amoghpatel/careerisk/internal/workforce"
)

const (
	toolCompanyHires  = "search_company_hires"
	toolLocationHires = "search_location_hires"
	toolPersonMoves   = "search_person_moves"
)

func toolDefinitions() []llm.Tool {
	strProp := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}
	intProp := func(desc string) map[string]any {
		return map[string]any{"type": "integer", "description": desc}
	}
	return []llm.Tool{
		{
			Name:        toolCompanyHires,
			Description: "Search recent hires at a specific company, optionally filtered by function, level and location.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"company_name": strProp("Company to search hires for"),
					"function":     strProp("Optional job function filter"),
					"level":        strProp("Optional seniority level filter"),
					"location":     strProp("Optional location filter"),
					"months_back":  intProp("Lookback window in months, default 12"),
				},
				"required": []string{"company_name"},
			},
		},
		{
			Name:        toolLocationHires,
			Description: "Search recent hiring activity in a location, optionally filtered by function and level.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location":    strProp("Location to search hiring in"),
					"function":    strProp("Optional job function filter"),
					"level":       strProp("Optional seniority level filter"),
					"months_back": intProp("Lookback window in months, default 6"),
				},
				"required": []string{"location"},
			},
		},
		{
			Name:        toolPersonMoves,
			Description: "Search people arriving at or departing from a company, optionally filtered by function.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"company_name": strProp("Company to track moves at"),
					"direction":    strProp("Either arrivals or departures"),
					"function":     strProp("Optional job function filter"),
					"months_back":  intProp("Lookback window in months, default 12"),
				},
				"required": []string{"company_name", "direction"},
			},
		},
	}
}

type toolInput struct {
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Direction   string `json:"direction"`
	Function    string `json:"function"`
	Level       string `json:"level"`
	MonthsBack  int    `json:"months_back"`
}

// dispatchTool executes one tool-use block against the workforce service and
// returns the result serialized for a tool_result block. Unknown tools and
// bad input yield a JSON error payload rather than an error: the model should
// see what went wrong and recover.
func (s *Service) dispatchTool(ctx context.Context, name string, input json.RawMessage) string {
	var in toolInput
	if err := json.Unmarshal(input, &in); err != nil {
		return `{"error": "invalid tool input"}`
	}

	var filters []workforce.Filter
	switch name {
	case toolCompanyHires:
		in.defaultMonths(12)
		filters = []workforce.Filter{{
			Operator: "and",
			Filters: withOptional([]workforce.Filter{
				{Field: "company.name", Value: in.CompanyName},
				{Field: "started_at", Operator: "gte", Value: s.monthsAgo(in.MonthsBack)},
			}, in),
		}}
	case toolLocationHires:
		in.defaultMonths(6)
		filters = []workforce.Filter{{
			Operator: "and",
			Filters: withOptional([]workforce.Filter{
				{Field: "location", Value: in.Location},
				{Field: "started_at", Operator: "gte", Value: s.monthsAgo(in.MonthsBack)},
			}, in),
		}}
	case toolPersonMoves:
		in.defaultMonths(12)
		dateField := "started_at"
		if in.Direction == "departures" {
			dateField = "ended_at"
		}
		filters = []workforce.Filter{{
			Operator: "and",
			Filters: withOptional([]workforce.Filter{
				{Field: "company.name", Value: in.CompanyName},
				{Field: dateField, Operator: "gte", Value: s.monthsAgo(in.MonthsBack)},
			}, in),
		}}
	default:
		return `{"error": "unknown tool"}`
	}

	results := s.workforce.Search(ctx, workforce.SearchRequest{Filters: filters, Size: 25})
	return string(results)
}

func (s *Service) monthsAgo(months int) string {
	return s.now().AddDate(0, -months, 0).Format("2006-01-02")
}

func (in *toolInput) defaultMonths(d int) {
	if in.MonthsBack <= 0 {
		in.MonthsBack = d
	}
}

func withOptional(base []workforce.Filter, in toolInput) []workforce.Filter {
	if in.Function != "" {
		base = append(base, workforce.Filter{Field: "function", Value: in.Function})
	}
	if in.Level != "" {
		base = append(base, workforce.Filter{Field: "level", Value: in.Level})
	}
	if in.Location != "" && in.CompanyName != "" {
		base = append(base, workforce.Filter{Field: "location", Value: in.Location})
	}
	return base
}
