package models

import "time"

// DemographicsRow is one point of the headcount time series for a company,
// grouped by function. Count covers active employees only.
type DemographicsRow struct {
	Date     time.Time `json:"date"`
	Function Function  `json:"function"`
	Count    int       `json:"count"`
}

// FlowsRow aggregates arrivals and departures at a company over a window.
// Group is either a function or a level depending on which report produced it.
type FlowsRow struct {
	Group      string `json:"group"`
	Arrivals   int    `json:"arrivals"`
	Departures int    `json:"departures"`
}

// FunctionHeadcount is the latest and earliest headcount for one function
// over the demographics window.
type FunctionHeadcount struct {
	Function Function `json:"function"`
	Latest   int      `json:"latest"`
	Earliest int      `json:"earliest"`
}

// TimelineEntry is one month of the headcount timeline. FunctionCount is the
// subject's-function headcount for that month, nil when no function was asked for.
type TimelineEntry struct {
	Month         string `json:"month"`
	Total         int    `json:"total"`
	FunctionCount *int   `json:"functionCount,omitempty"`
}

// FunctionFlow is the arrivals/departures aggregate for one function.
// ChurnPct is departures/arrivals as a percentage, one decimal place.
type FunctionFlow struct {
	Function   string  `json:"function"`
	Arrivals   int     `json:"arrivals"`
	Departures int     `json:"departures"`
	Net        int     `json:"net"`
	ChurnPct   float64 `json:"churnPct"`
}

// CompanySummary aggregates demographics and flows for the subject's employer.
type CompanySummary struct {
	TotalHeadcount    int                 `json:"totalHeadcount"`
	EarliestHeadcount int                 `json:"earliestHeadcount"`
	GrowthPct         float64             `json:"growthPct"`
	Functions         []FunctionHeadcount `json:"functions,omitempty"`
	Timeline          []TimelineEntry     `json:"timeline,omitempty"`
	FunctionFlows     []FunctionFlow      `json:"functionFlows,omitempty"`
}

// Empty reports whether the summary carries no data at all, which is what
// downstream consumers see when the workforce service is unreachable.
func (s CompanySummary) Empty() bool {
	return s.TotalHeadcount == 0 && len(s.Functions) == 0 &&
		len(s.Timeline) == 0 && len(s.FunctionFlows) == 0
}
