package workforce

import (
	"testing"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// --- Summarize tests ---

func demoRows() []models.DemographicsRow {
	return []models.DemographicsRow{
		{Date: month(2025, time.January), Function: "Engineering", Count: 100},
		{Date: month(2025, time.January), Function: "Sales and Support", Count: 60},
		{Date: month(2025, time.June), Function: "Engineering", Count: 110},
		{Date: month(2025, time.June), Function: "Sales and Support", Count: 50},
		{Date: month(2025, time.December), Function: "Engineering", Count: 120},
		{Date: month(2025, time.December), Function: "Sales and Support", Count: 40},
	}
}

func TestSummarize(t *testing.T) {
	flows := []models.FlowsRow{
		{Group: "Sales and Support", Arrivals: 10, Departures: 8},
		{Group: "Engineering", Arrivals: 30, Departures: 6},
	}

	s := Summarize(demoRows(), flows, models.FunctionSales)

	if s.EarliestHeadcount != 160 || s.TotalHeadcount != 160 {
		t.Errorf("headcounts = %d/%d, want 160/160", s.EarliestHeadcount, s.TotalHeadcount)
	}
	if s.GrowthPct != 0 {
		t.Errorf("GrowthPct = %v, want 0", s.GrowthPct)
	}

	if len(s.Timeline) != 3 {
		t.Fatalf("timeline has %d entries, want 3", len(s.Timeline))
	}
	if s.Timeline[0].Month != "Jan 2025" || s.Timeline[2].Month != "Dec 2025" {
		t.Errorf("timeline months wrong: %+v", s.Timeline)
	}
	if s.Timeline[2].FunctionCount == nil || *s.Timeline[2].FunctionCount != 40 {
		t.Errorf("function count not tracked: %+v", s.Timeline[2])
	}

	if len(s.Functions) != 2 || s.Functions[0].Function != "Engineering" {
		t.Errorf("functions not sorted: %+v", s.Functions)
	}
	if s.Functions[0].Latest != 120 || s.Functions[0].Earliest != 100 {
		t.Errorf("engineering headcounts wrong: %+v", s.Functions[0])
	}

	if len(s.FunctionFlows) != 2 {
		t.Fatalf("flows has %d entries, want 2", len(s.FunctionFlows))
	}
	sales := s.FunctionFlows[1]
	if sales.Function != "Sales and Support" || sales.Net != 2 {
		t.Errorf("unexpected sales flow: %+v", sales)
	}
	if sales.ChurnPct != 80.0 {
		t.Errorf("ChurnPct = %v, want 80.0", sales.ChurnPct)
	}
}

func TestSummarize_OrderInsensitive(t *testing.T) {
	rows := demoRows()
	reversed := make([]models.DemographicsRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	a := Summarize(rows, nil, models.FunctionEngineering)
	b := Summarize(reversed, nil, models.FunctionEngineering)

	if a.TotalHeadcount != b.TotalHeadcount || a.GrowthPct != b.GrowthPct {
		t.Errorf("summaries differ by input order: %+v vs %+v", a, b)
	}
	if len(a.Timeline) != len(b.Timeline) {
		t.Fatalf("timeline lengths differ: %d vs %d", len(a.Timeline), len(b.Timeline))
	}
	for i := range a.Timeline {
		ae, be := a.Timeline[i], b.Timeline[i]
		if ae.Month != be.Month || ae.Total != be.Total ||
			*ae.FunctionCount != *be.FunctionCount {
			t.Errorf("timeline entry %d differs: %+v vs %+v", i, ae, be)
		}
	}
}

func TestSummarize_NoSubjectFunction(t *testing.T) {
	s := Summarize(demoRows(), nil, "")
	for _, e := range s.Timeline {
		if e.FunctionCount != nil {
			t.Errorf("expected nil function count, got %+v", e)
		}
	}
}

func TestSummarize_ZeroArrivalsSkipsChurn(t *testing.T) {
	flows := []models.FlowsRow{{Group: "Legal", Arrivals: 0, Departures: 3}}
	s := Summarize(nil, flows, "")
	if len(s.FunctionFlows) != 1 {
		t.Fatalf("flows has %d entries, want 1", len(s.FunctionFlows))
	}
	if s.FunctionFlows[0].ChurnPct != 0 {
		t.Errorf("ChurnPct = %v, want 0", s.FunctionFlows[0].ChurnPct)
	}
}

func TestSummarize_GrowthRounding(t *testing.T) {
	rows := []models.DemographicsRow{
		{Date: month(2025, time.January), Function: "Engineering", Count: 90},
		{Date: month(2025, time.December), Function: "Engineering", Count: 100},
	}
	s := Summarize(rows, nil, "")
	if s.GrowthPct != 11.1 {
		t.Errorf("GrowthPct = %v, want 11.1", s.GrowthPct)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, "")
	if !s.Empty() {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestSummarize_TimelineWindow(t *testing.T) {
	var rows []models.DemographicsRow
	for i := 0; i < 24; i++ {
		rows = append(rows, models.DemographicsRow{
			Date:     month(2024, time.January).AddDate(0, i, 0),
			Function: "Engineering",
			Count:    100 + i,
		})
	}
	s := Summarize(rows, nil, "")
	if len(s.Timeline) != 12 {
		t.Fatalf("timeline has %d entries, want 12", len(s.Timeline))
	}
	if s.Timeline[0].Month != "Jan 2025" {
		t.Errorf("window starts at %s, want Jan 2025", s.Timeline[0].Month)
	}
}
