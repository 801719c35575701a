// Package salary is a pure lookup model for compensation bands and the
// AI-pressure derivation. Figures are directional, not offers.
package salary

import (
	"math"
	"strings"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// midpointAtStaff is the Staff-level midpoint per function, in USD, before
// level and location adjustment.
var midpointAtStaff = map[models.Function]int{
	models.FunctionSales:       72000,
	models.FunctionMarketing:   88000,
	models.FunctionBizMgmt:     95000,
	models.FunctionFinance:     82000,
	models.FunctionHR:          70000,
	models.FunctionEngineering: 125000,
	models.FunctionOperations:  75000,
	models.FunctionIT:          98000,
	models.FunctionConsulting:  105000,
	models.FunctionProgramMgmt: 92000,
	models.FunctionLegal:       120000,
	models.FunctionRisk:        90000,
	models.FunctionHealthcare:  85000,
	models.FunctionEducation:   58000,
}

const defaultMidpoint = 85000

var levelMultiplier = map[models.Level]float64{
	models.LevelIntern:      0.45,
	models.LevelStaff:       1.0,
	models.LevelSeniorStaff: 1.3,
	models.LevelConsultant:  1.3,
	models.LevelManager:     1.6,
	models.LevelDirector:    2.1,
	models.LevelVP:          2.8,
	models.LevelCTeam:       3.8,
}

// Metro premiums applied on substring match against the location, first hit
// wins. Everything else gets 1.0.
var locationMultipliers = []struct {
	Match      string
	Multiplier float64
}{
	{"san francisco", 1.35},
	{"bay area", 1.35},
	{"new york", 1.28},
	{"seattle", 1.22},
	{"boston", 1.18},
	{"los angeles", 1.15},
	{"washington", 1.12},
	{"austin", 1.08},
	{"chicago", 1.08},
	{"denver", 1.05},
	{"london", 1.10},
	{"remote", 1.0},
}

// Band returns the (low, midpoint, high) band for a function, level and
// location. Unknown functions and levels fall back to neutral defaults.
func Band(fn models.Function, level models.Level, location string) models.SalaryBand {
	mid, ok := midpointAtStaff[fn]
	if !ok {
		mid = defaultMidpoint
	}
	lm, ok := levelMultiplier[level]
	if !ok {
		lm = 1.0
	}
	m := float64(mid) * lm * locationMultiplier(location)
	return bandAround(m)
}

// Progression returns one band per level of the closed level set, in order,
// for the subject's function and location.
func Progression(fn models.Function, location string) []models.LevelBand {
	out := make([]models.LevelBand, 0, len(models.Levels))
	for _, level := range models.Levels {
		out = append(out, models.LevelBand{
			Level: level,
			Band:  Band(fn, level, location),
		})
	}
	return out
}

// AIPressure maps the AI risk sub-score onto compensation pressure. The
// mapping is monotonic: higher risk never yields lower magnitude or a more
// favorable impact.
func AIPressure(aiRisk int) models.AIPressure {
	p := models.AIPressure{}
	switch {
	case aiRisk >= 75:
		p.Magnitude = "High"
	case aiRisk >= 55:
		p.Magnitude = "Elevated"
	case aiRisk >= 30:
		p.Magnitude = "Moderate"
	default:
		p.Magnitude = "Low"
	}
	switch {
	case aiRisk >= 50:
		p.Direction = "downward"
	case aiRisk >= 30:
		p.Direction = "flat"
	default:
		p.Direction = "upward"
	}
	// Linear in risk: +5% at 0 down to -15% at 100.
	p.PctImpact = int(math.Round(5 - float64(aiRisk)*0.2))
	return p
}

// Estimate bundles the band, progression and AI pressure for one subject.
func Estimate(fn models.Function, level models.Level, location string, aiRisk int) models.SalaryEstimate {
	return models.SalaryEstimate{
		Band:        Band(fn, level, location),
		Progression: Progression(fn, location),
		AIPressure:  AIPressure(aiRisk),
	}
}

func locationMultiplier(location string) float64 {
	loc := strings.ToLower(location)
	for _, lm := range locationMultipliers {
		if strings.Contains(loc, lm.Match) {
			return lm.Multiplier
		}
	}
	return 1.0
}

// bandAround spreads a midpoint into a band, rounded to the nearest thousand.
func bandAround(mid float64) models.SalaryBand {
	return models.SalaryBand{
		Low:      roundThousand(mid * 0.85),
		Midpoint: roundThousand(mid),
		High:     roundThousand(mid * 1.2),
	}
}

func roundThousand(v float64) int {
	return int(math.Round(v/1000)) * 1000
}
