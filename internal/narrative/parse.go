package narrative

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amoghpatel/careerisk/pkg/models"
)

var errNoObject = errors.New("no JSON object found in response")

// ParseNarrative turns raw LLM output into a validated Narrative. It strips
// code fences, extracts the first balanced object and rejects anything that
// lost a required field.
func ParseNarrative(text string) (models.Narrative, error) {
	var n models.Narrative
	obj, err := extractObject(text)
	if err != nil {
		return n, err
	}
	if err := json.Unmarshal([]byte(obj), &n); err != nil {
		return n, fmt.Errorf("parsing narrative JSON: %w", err)
	}
	if err := validate(&n); err != nil {
		return n, err
	}
	return n, nil
}

// extractObject strips markdown fences and returns the first balanced {...}.
func extractObject(text string) (string, error) {
	text = stripFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errNoObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", errNoObject
}

// stripFences removes markdown code-block wrappers; models wrap JSON in
// ```json fences even when told not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first := text[:i]
		if len(first) < 20 && !strings.ContainsAny(first, " {") {
			text = text[i+1:]
		}
	}
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// validate enforces the fixed narrative shape: the prose fields that every
// assessment renders, and exactly four ranked retraining paths.
func validate(n *models.Narrative) error {
	prose := []struct {
		field string
		value string
	}{
		{"overview", n.Overview},
		{"careerPattern", n.CareerPattern},
		{"aiThreatAnalysis", n.AIThreatAnalysis},
		{"companyHealth", n.CompanyHealth},
		{"promotionAnalysis", n.PromotionAnalysis},
		{"geoMarketContext", n.GeoMarketContext},
		{"hiringOutlook", n.HiringOutlook},
		{"bottomLine", n.BottomLine},
	}
	for _, f := range prose {
		if f.value == "" {
			return fmt.Errorf("narrative missing %s", f.field)
		}
	}
	if len(n.MitigatingFactors) == 0 {
		return errors.New("narrative missing mitigatingFactors")
	}
	if len(n.RetrainingPaths) != 4 {
		return fmt.Errorf("narrative has %d retraining paths, want 4", len(n.RetrainingPaths))
	}

	seen := map[int]bool{}
	for i := range n.RetrainingPaths {
		p := &n.RetrainingPaths[i]
		if p.Rank < 1 || p.Rank > 4 || seen[p.Rank] {
			return fmt.Errorf("retraining path ranks are not a permutation of 1..4")
		}
		seen[p.Rank] = true
		if p.Title == "" {
			return fmt.Errorf("retraining path %d missing title", p.Rank)
		}
		p.FitScore = clampScore(p.FitScore)
		p.GrowthScore = clampScore(p.GrowthScore)
		p.AISafeScore = clampScore(p.AISafeScore)
		// Function and target level are closed sets; models sometimes invent
		// labels. Clear unknowns rather than discarding the whole narrative.
		if p.Function != "" && !p.Function.Valid() {
			p.Function = ""
		}
		if p.TargetLevel != "" && !p.TargetLevel.Valid() {
			p.TargetLevel = ""
		}
	}
	return nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
