package salary

import (
	"testing"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// --- Band tests ---

func TestBand(t *testing.T) {
	tests := []struct {
		name     string
		fn       models.Function
		level    models.Level
		location string
		midpoint int
	}{
		{
			name:     "staff engineering baseline",
			fn:       models.FunctionEngineering,
			level:    models.LevelStaff,
			midpoint: 125000,
		},
		{
			name:     "manager multiplier",
			fn:       models.FunctionEngineering,
			level:    models.LevelManager,
			midpoint: 200000,
		},
		{
			name:     "san francisco premium",
			fn:       models.FunctionEngineering,
			level:    models.LevelStaff,
			location: "San Francisco Bay Area",
			midpoint: 169000, // 125000 * 1.35, rounded to thousands
		},
		{
			name:     "unknown function falls back",
			fn:       "Basket Weaving",
			level:    models.LevelStaff,
			midpoint: 85000,
		},
		{
			name:     "unknown level treated as staff",
			fn:       models.FunctionSales,
			level:    "Wizard",
			midpoint: 72000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Band(tt.fn, tt.level, tt.location)
			if b.Midpoint != tt.midpoint {
				t.Errorf("midpoint = %d, want %d", b.Midpoint, tt.midpoint)
			}
			if b.Low >= b.Midpoint || b.Midpoint >= b.High {
				t.Errorf("band not ordered: %+v", b)
			}
		})
	}
}

// --- Progression tests ---

func TestProgression(t *testing.T) {
	prog := Progression(models.FunctionEngineering, "Denver")
	if len(prog) != len(models.Levels) {
		t.Fatalf("progression has %d levels, want %d", len(prog), len(models.Levels))
	}
	for i, lb := range prog {
		if lb.Level != models.Levels[i] {
			t.Errorf("level %d = %v, want %v", i, lb.Level, models.Levels[i])
		}
	}
	// Senior Staff and Consultant share a multiplier; otherwise midpoints
	// rise with level.
	for i := 1; i < len(prog); i++ {
		if prog[i].Band.Midpoint < prog[i-1].Band.Midpoint {
			t.Errorf("midpoint fell from %v to %v", prog[i-1].Level, prog[i].Level)
		}
	}
}

// --- AIPressure tests ---

func TestAIPressure(t *testing.T) {
	tests := []struct {
		risk      int
		magnitude string
		direction string
		pct       int
	}{
		{0, "Low", "upward", 5},
		{20, "Low", "upward", 1},
		{30, "Moderate", "flat", -1},
		{49, "Moderate", "flat", -5},
		{55, "Elevated", "downward", -6},
		{75, "High", "downward", -10},
		{100, "High", "downward", -15},
	}

	for _, tt := range tests {
		p := AIPressure(tt.risk)
		if p.Magnitude != tt.magnitude {
			t.Errorf("AIPressure(%d).Magnitude = %q, want %q", tt.risk, p.Magnitude, tt.magnitude)
		}
		if p.Direction != tt.direction {
			t.Errorf("AIPressure(%d).Direction = %q, want %q", tt.risk, p.Direction, tt.direction)
		}
		if p.PctImpact != tt.pct {
			t.Errorf("AIPressure(%d).PctImpact = %d, want %d", tt.risk, p.PctImpact, tt.pct)
		}
	}
}

func TestAIPressure_Monotonic(t *testing.T) {
	prev := AIPressure(0)
	for risk := 1; risk <= 100; risk++ {
		cur := AIPressure(risk)
		if cur.PctImpact > prev.PctImpact {
			t.Fatalf("PctImpact rose from %d at risk %d to %d at risk %d",
				prev.PctImpact, risk-1, cur.PctImpact, risk)
		}
		if magnitudeRank(cur.Magnitude) < magnitudeRank(prev.Magnitude) {
			t.Fatalf("magnitude fell from %q to %q at risk %d", prev.Magnitude, cur.Magnitude, risk)
		}
		prev = cur
	}
}

func magnitudeRank(m string) int {
	switch m {
	case "Low":
		return 0
	case "Moderate":
		return 1
	case "Elevated":
		return 2
	default:
		return 3
	}
}

// --- Estimate tests ---

func TestEstimate(t *testing.T) {
	e := Estimate(models.FunctionSales, models.LevelManager, "Boston", 85)
	if e.Band.Midpoint == 0 {
		t.Error("expected a non-zero band")
	}
	if len(e.Progression) != len(models.Levels) {
		t.Errorf("progression has %d levels, want %d", len(e.Progression), len(models.Levels))
	}
	if e.AIPressure.Magnitude != "High" || e.AIPressure.Direction != "downward" {
		t.Errorf("unexpected pressure: %+v", e.AIPressure)
	}
}
