package workforce

import (
	"math"
	"sort"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

const timelineMonths = 12

// Summarize aggregates demographics and per-function flows into a company
// summary. subjectFn, when non-empty, adds that function's count to each
// timeline entry. The result does not depend on input row order.
func Summarize(demo []models.DemographicsRow, flows []models.FlowsRow, subjectFn models.Function) models.CompanySummary {
	var s models.CompanySummary

	type monthData struct {
		date     time.Time
		total    int
		function int
	}
	byDate := map[time.Time]*monthData{}
	latestByFn := map[models.Function]struct {
		date  time.Time
		count int
	}{}
	earliestByFn := map[models.Function]struct {
		date  time.Time
		count int
	}{}

	for _, r := range demo {
		md, ok := byDate[r.Date]
		if !ok {
			md = &monthData{date: r.Date}
			byDate[r.Date] = md
		}
		md.total += r.Count
		if subjectFn != "" && r.Function == subjectFn {
			md.function += r.Count
		}

		if cur, ok := latestByFn[r.Function]; !ok || r.Date.After(cur.date) {
			latestByFn[r.Function] = struct {
				date  time.Time
				count int
			}{r.Date, r.Count}
		}
		if cur, ok := earliestByFn[r.Function]; !ok || r.Date.Before(cur.date) {
			earliestByFn[r.Function] = struct {
				date  time.Time
				count int
			}{r.Date, r.Count}
		}
	}

	months := make([]*monthData, 0, len(byDate))
	for _, md := range byDate {
		months = append(months, md)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].date.Before(months[j].date) })

	if len(months) > 0 {
		s.EarliestHeadcount = months[0].total
		s.TotalHeadcount = months[len(months)-1].total
		if s.EarliestHeadcount > 0 {
			s.GrowthPct = round1(float64(s.TotalHeadcount-s.EarliestHeadcount) /
				float64(s.EarliestHeadcount) * 100)
		}
	}

	start := 0
	if len(months) > timelineMonths {
		start = len(months) - timelineMonths
	}
	for _, md := range months[start:] {
		entry := models.TimelineEntry{
			Month: md.date.Format("Jan 2006"),
			Total: md.total,
		}
		if subjectFn != "" {
			fc := md.function
			entry.FunctionCount = &fc
		}
		s.Timeline = append(s.Timeline, entry)
	}

	for fn, latest := range latestByFn {
		s.Functions = append(s.Functions, models.FunctionHeadcount{
			Function: fn,
			Latest:   latest.count,
			Earliest: earliestByFn[fn].count,
		})
	}
	sort.Slice(s.Functions, func(i, j int) bool {
		return s.Functions[i].Function < s.Functions[j].Function
	})

	for _, r := range flows {
		ff := models.FunctionFlow{
			Function:   r.Group,
			Arrivals:   r.Arrivals,
			Departures: r.Departures,
			Net:        r.Arrivals - r.Departures,
		}
		if r.Arrivals > 0 {
			ff.ChurnPct = round1(float64(r.Departures) / float64(r.Arrivals) * 100)
		}
		s.FunctionFlows = append(s.FunctionFlows, ff)
	}
	sort.Slice(s.FunctionFlows, func(i, j int) bool {
		return s.FunctionFlows[i].Function < s.FunctionFlows[j].Function
	})

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
