// Package scoring maps a subject and workforce aggregates to the six risk
// sub-scores and the weighted overall score. All functions are pure.
package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// Neutral defaults when input data is missing.
const (
	neutralScore       = 50
	neutralTenureScore = 40
)

// Overall weights. The weighted combination is normalized by their sum.
var weights = map[string]float64{
	"aiRisk":             0.30,
	"companyInstability": 0.20,
	"promotionCeiling":   0.15,
	"tenureVolatility":   0.10,
	"functionChurn":      0.15,
	"salaryCompression":  0.10,
}

// Base AI exposure by function.
var functionAIRisk = map[models.Function]int{
	models.FunctionSales:       70,
	models.FunctionMarketing:   45,
	models.FunctionBizMgmt:     40,
	models.FunctionFinance:     55,
	models.FunctionHR:          45,
	models.FunctionEngineering: 20,
	models.FunctionOperations:  50,
	models.FunctionIT:          35,
	models.FunctionConsulting:  40,
	models.FunctionProgramMgmt: 45,
	models.FunctionLegal:       20,
	models.FunctionRisk:        35,
	models.FunctionHealthcare:  15,
	models.FunctionEducation:   25,
}

var levelAIModifier = map[models.Level]int{
	models.LevelStaff:    15,
	models.LevelManager:  -5,
	models.LevelDirector: -15,
	models.LevelVP:       -20,
	models.LevelCTeam:    -25,
}

var highRiskTitleKeywords = []string{
	"sdr", "bdr", "sales development", "business development", "outbound",
	"lead generation", "prospecting", "data entry", "scheduling", "coordinator",
}

var lowRiskTitleKeywords = []string{
	"strategy", "leadership", "director", "vp", "chief", "enablement",
	"operations", "success", "relationship",
}

// Compute derives all six sub-scores plus the overall score.
func Compute(subj models.Subject, demo []models.DemographicsRow, flows, levelFlows []models.FlowsRow) models.Scores {
	s := models.Scores{
		AIRisk:             AIRisk(subj),
		CompanyInstability: CompanyInstability(demo),
		PromotionCeiling:   PromotionCeiling(levelFlows),
		TenureVolatility:   TenureVolatility(subj.Jobs),
		FunctionChurn:      FunctionChurn(subj.CurrentFunction, flows),
	}
	s.SalaryCompression = clamp(round(0.6*float64(s.AIRisk) + 0.4*float64(s.FunctionChurn)))
	s.Overall = Overall(s)
	return s
}

// AIRisk scores exposure to AI displacement from function, level and title.
func AIRisk(subj models.Subject) int {
	base, ok := functionAIRisk[subj.CurrentFunction]
	if !ok {
		base = neutralScore
	}
	base += levelAIModifier[subj.CurrentLevel]

	title := strings.ToLower(subj.CurrentTitle)
	for _, kw := range highRiskTitleKeywords {
		if strings.Contains(title, kw) {
			base += 12
			break
		}
	}
	for _, kw := range lowRiskTitleKeywords {
		if strings.Contains(title, kw) {
			base -= 10
			break
		}
	}
	return clamp(base)
}

// CompanyInstability maps headcount growth over the demographics window onto
// a piecewise risk scale. Fewer than two data points is neutral.
func CompanyInstability(rows []models.DemographicsRow) int {
	totals := totalsByDate(rows)
	if len(totals) < 2 {
		return neutralScore
	}
	earliest := totals[0].count
	latest := totals[len(totals)-1].count
	if earliest == 0 {
		return neutralScore
	}
	growth := float64(latest-earliest) / float64(earliest)
	switch {
	case growth > 0.5:
		return 15
	case growth > 0.2:
		return 25
	case growth > 0.05:
		return 35
	case growth > -0.05:
		return 50
	case growth > -0.2:
		return 70
	default:
		return 85
	}
}

// PromotionCeiling reads the manager-to-director hiring ratio out of the
// flows-by-level arrivals.
func PromotionCeiling(levelFlows []models.FlowsRow) int {
	if len(levelFlows) == 0 {
		return neutralScore
	}
	var managers, directors int
	for _, r := range levelFlows {
		switch models.Level(r.Group) {
		case models.LevelManager:
			managers += r.Arrivals
		case models.LevelDirector:
			directors += r.Arrivals
		}
	}
	if managers == 0 {
		return 40
	}
	if directors == 0 {
		return 75
	}
	ratio := float64(managers) / float64(directors)
	switch {
	case ratio <= 2:
		return 30
	case ratio <= 3:
		return 40
	case ratio <= 4:
		return 55
	case ratio <= 6:
		return 65
	default:
		return 75
	}
}

// TenureVolatility scores the subject's own job-hopping pattern. Only jobs
// with both dates present count; short stints are under six months.
func TenureVolatility(jobs []models.Job) int {
	var months []float64
	shortStints := 0
	for _, j := range jobs {
		if j.Start.IsZero() || j.End.IsZero() {
			continue
		}
		m := j.End.Sub(j.Start).Hours() / (24 * 30.44)
		months = append(months, m)
		if m < 6 {
			shortStints++
		}
	}
	if len(months) == 0 {
		return neutralTenureScore
	}
	var sum float64
	for _, m := range months {
		sum += m
	}
	avg := sum / float64(len(months))

	var base int
	switch {
	case avg < 12:
		base = 75
	case avg < 18:
		base = 60
	case avg < 24:
		base = 45
	case avg < 36:
		base = 35
	default:
		base = 25
	}
	return clamp(base + 5*shortStints)
}

// FunctionChurn scores the departure/arrival ratio for the subject's own
// function over the flows window.
func FunctionChurn(fn models.Function, flows []models.FlowsRow) int {
	if fn == "" || len(flows) == 0 {
		return neutralScore
	}
	for _, r := range flows {
		if models.Function(r.Group) != fn {
			continue
		}
		if r.Arrivals == 0 {
			return neutralScore
		}
		ratio := float64(r.Departures) / float64(r.Arrivals)
		switch {
		case ratio < 0.25:
			return 20
		case ratio < 0.35:
			return 35
		case ratio < 0.5:
			return 50
		case ratio < 0.65:
			return 65
		default:
			return 78
		}
	}
	return neutralScore
}

// Overall is the fixed-weight convex combination of the six sub-scores.
func Overall(s models.Scores) int {
	sum := 0.30*float64(s.AIRisk) +
		0.20*float64(s.CompanyInstability) +
		0.15*float64(s.PromotionCeiling) +
		0.10*float64(s.TenureVolatility) +
		0.15*float64(s.FunctionChurn) +
		0.10*float64(s.SalaryCompression)
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	return clamp(round(sum / totalWeight))
}

type dateTotal struct {
	date  time.Time
	count int
}

// totalsByDate sums function counts per date and returns them in date order.
func totalsByDate(rows []models.DemographicsRow) []dateTotal {
	byDate := map[time.Time]int{}
	for _, r := range rows {
		byDate[r.Date] += r.Count
	}
	totals := make([]dateTotal, 0, len(byDate))
	for d, c := range byDate {
		totals = append(totals, dateTotal{date: d, count: c})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].date.Before(totals[j].date) })
	return totals
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round(v float64) int { return int(math.Round(v)) }
