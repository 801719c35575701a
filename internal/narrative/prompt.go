package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amoghpatel/careerisk/internal/career"
)

const systemInstruction = `You are a workforce-intelligence analyst producing an employment-risk assessment.
Respond with ONLY a JSON object, no markdown, no backticks, no commentary.
The JSON must have exactly these fields:
{
  "overview": string,
  "careerPattern": string,
  "aiThreatAnalysis": string,
  "mitigatingFactors": [string],
  "companyHealth": string,
  "promotionAnalysis": string,
  "geoMarketContext": string,
  "hiringOutlook": string,
  "retrainingPaths": [exactly 4 objects: {"rank": 1-4, "title": string, "function": string,
    "targetLevel": string, "fitScore": 0-100, "growthScore": 0-100, "aiSafeScore": 0-100,
    "rationale": string, "skills": [string], "timeToTransition": string, "salaryComparison": string}],
  "bottomLine": string
}
Ground every claim in the supplied data. Figures are directional and sample-based; do not state precise headcounts as fact.`

// buildPrompt assembles the user prompt from every structured input the
// assessment produced.
func buildPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SUBJECT\nName: %s\n", in.Subject.Name)
	if in.Subject.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", in.Subject.Location)
	}
	fmt.Fprintf(&b, "Current role: %s at %s (function: %s, level: %s)\n",
		in.Subject.CurrentTitle, in.Subject.CurrentCompany,
		in.Subject.CurrentFunction, in.Subject.CurrentLevel)
	fmt.Fprintf(&b, "Career stage: %s (%s)\n", in.Stage, in.Stage.Label())
	fmt.Fprintf(&b, "Years of experience: %d\n", in.Years)
	if in.Profile.Summary != "" {
		fmt.Fprintf(&b, "Functional profile: %s (dominant: %s, share %.2f, depth: %s)\n",
			in.Profile.Summary, in.Profile.Dominant, in.Profile.DominantShare, in.Profile.Depth)
	}

	b.WriteString("\nCAREER HISTORY (most recent first; each role tagged with its classification)\n")
	for i, j := range in.Subject.Jobs {
		tag := "real"
		if i < len(in.Classifications) {
			tag = in.Classifications[i].Class.String()
			if in.Classifications[i].Prestige {
				tag += ", prestige"
			}
		}
		end := "present"
		if !j.End.IsZero() {
			end = j.End.Format("Jan 2006")
		}
		start := "unknown"
		if !j.Start.IsZero() {
			start = j.Start.Format("Jan 2006")
		}
		fmt.Fprintf(&b, "- [%s] %s at %s (%s - %s, function: %s, level: %s)\n",
			tag, j.Title, j.Company, start, end, j.Function, j.Level)
	}

	if interns := career.PrestigeInternships(in.Subject.Jobs); len(interns) > 0 {
		fmt.Fprintf(&b, "\nINTERNSHIPS: prestige internships at %s\n", strings.Join(interns, ", "))
	}

	b.WriteString("\nRISK SCORES (0-100, higher = more risk)\n")
	fmt.Fprintf(&b, "aiRisk: %d, companyInstability: %d, promotionCeiling: %d, tenureVolatility: %d, functionChurn: %d, salaryCompression: %d, overall: %d\n",
		in.Scores.AIRisk, in.Scores.CompanyInstability, in.Scores.PromotionCeiling,
		in.Scores.TenureVolatility, in.Scores.FunctionChurn, in.Scores.SalaryCompression,
		in.Scores.Overall)

	if company, err := json.Marshal(in.Company); err == nil {
		fmt.Fprintf(&b, "\nCOMPANY DATA (JSON)\n%s\n", company)
	}
	if salary, err := json.Marshal(in.Salary); err == nil {
		fmt.Fprintf(&b, "\nSALARY DATA (JSON)\n%s\n", salary)
	}

	if in.HiringSignals != nil {
		b.WriteString("\nHIRING SIGNALS\n")
		writeSignal(&b, "Regional demand", in.HiringSignals.RegionalDemand)
		writeSignal(&b, "Employer-network destinations", in.HiringSignals.EmployerNetwork)
		writeSignal(&b, "School-network hires", in.HiringSignals.SchoolNetwork)
		writeSignal(&b, "Multi-signal matches", in.HiringSignals.MultiSignal)
	}

	b.WriteString("\nCONSTRAINTS\n")
	b.WriteString("- Respect functional gravity: for a deep specialist, every retraining path must stay within or adjacent to the dominant function.\n")
	b.WriteString("- Match career stage: no junior suggestions for executives, no executive suggestions for early-career subjects.\n")
	b.WriteString("- When recommending paths, ignore every role tagged ignore or internship; they are not career evidence.\n")

	return b.String()
}

func writeSignal(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
