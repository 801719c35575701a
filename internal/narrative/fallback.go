package narrative

import (
	"fmt"
	"strings"

	"github.com/amoghpatel/careerisk/internal/career"
	"github.com/amoghpatel/careerisk/pkg/models"
)

// fallbackNarrative assembles a deterministic narrative from the template
// library when the LLM is unavailable or unusable.
func fallbackNarrative(in Input) models.Narrative {
	tmpl := templateFor(in.Subject.CurrentFunction)
	paths := pathsForStage(fallbackStageKey(in.Stage))

	n := models.Narrative{
		Overview: fmt.Sprintf(
			"%s is a %s %s professional at %s with %d years of experience. Overall employment risk scores %d of 100.",
			in.Subject.Name, strings.ToLower(in.Stage.Label()), in.Subject.CurrentFunction,
			in.Subject.CurrentCompany, in.Years, in.Scores.Overall),
		CareerPattern:    careerPattern(in),
		AIThreatAnalysis: tmpl.Threat,
		MitigatingFactors: []string{
			tmpl.Mitigation,
			fmt.Sprintf("%d years of accumulated experience raises the cost of replacement.", in.Years),
		},
		CompanyHealth:     companyHealth(in.Company),
		PromotionAnalysis: promotionAnalysis(in.Scores),
		GeoMarketContext:  geoContext(in.Subject.Location),
		HiringOutlook:     hiringOutlook(in.Company),
		RetrainingPaths:   paths,
		BottomLine:        bottomLine(in.Scores.Overall),
	}
	if in.Profile.Summary != "" {
		n.MitigatingFactors = append(n.MitigatingFactors, in.Profile.Summary)
	}
	return n
}

func fallbackStageKey(stage career.Stage) stageKey {
	switch stage {
	case career.StagePinnacle, career.StageSeniorExecutive:
		return stageKeyExecutive
	case career.StageSeniorLeader:
		return stageKeySeniorLeader
	case career.StageMidCareer:
		return stageKeyMidCareer
	default:
		return stageKeyEarly
	}
}

func careerPattern(in Input) string {
	real := 0
	for _, c := range in.Classifications {
		if c.Class == career.ClassReal {
			real++
		}
	}
	pattern := fmt.Sprintf("%d substantive roles over %d years", real, in.Years)
	if in.Profile.Summary == "" {
		return pattern + "."
	}
	return pattern + "; " + in.Profile.Summary
}

func companyHealth(c models.CompanySummary) string {
	if c.Empty() {
		return "No workforce data was available for the current employer; company-health signals are neutral by default."
	}
	trend := "roughly flat"
	switch {
	case c.GrowthPct > 5:
		trend = fmt.Sprintf("growing about %.1f%%", c.GrowthPct)
	case c.GrowthPct < -5:
		trend = fmt.Sprintf("shrinking about %.1f%%", -c.GrowthPct)
	}
	return fmt.Sprintf("Sampled headcount is %s over the observation window, from %d to %d tracked employees.",
		trend, c.EarliestHeadcount, c.TotalHeadcount)
}

func promotionAnalysis(s models.Scores) string {
	switch {
	case s.PromotionCeiling >= 70:
		return "Senior-level hiring at the employer is thin relative to manager intake, suggesting a real ceiling for internal advancement."
	case s.PromotionCeiling >= 50:
		return "The manager-to-director hiring ratio suggests moderate competition for advancement."
	default:
		return "Senior-level hiring appears healthy relative to manager intake; internal advancement looks viable."
	}
}

func geoContext(location string) string {
	if location == "" {
		return "No location was resolved for the subject, so regional demand could not be weighed."
	}
	return fmt.Sprintf("Compensation and demand figures are adjusted for the %s market.", location)
}

func hiringOutlook(c models.CompanySummary) string {
	if len(c.FunctionFlows) == 0 {
		return "No recent arrival or departure data was available; hiring outlook is unscored."
	}
	var arrivals, departures int
	for _, f := range c.FunctionFlows {
		arrivals += f.Arrivals
		departures += f.Departures
	}
	if arrivals > departures {
		return fmt.Sprintf("The employer added more people than it lost over the window (%d arrivals vs %d departures), a net-hiring posture.", arrivals, departures)
	}
	return fmt.Sprintf("Departures matched or exceeded arrivals over the window (%d vs %d); net hiring is flat to negative.", departures, arrivals)
}

// bottomLine is the directive closing, keyed to overall risk band.
func bottomLine(overall int) string {
	switch {
	case overall >= 70:
		return "Act now: start an active search and begin one of the retraining paths this quarter rather than waiting for the risk to materialize."
	case overall >= 50:
		return "Prepare deliberately: strengthen the mitigating skills above and test the market within the next six months."
	case overall >= 30:
		return "Monitor: the position is reasonably defensible today, but revisit this assessment if company or function signals deteriorate."
	default:
		return "Hold: current risk is low; invest in deepening the strengths that keep it that way."
	}
}

// --- pre-career branch ---

// preCareerNarrative is the deterministic form for subjects with no real job.
// It never calls the LLM.
func preCareerNarrative(in Input) models.Narrative {
	prestige := career.PrestigeInternships(in.Subject.Jobs)
	signal := preCareerSignal(in)

	overview := fmt.Sprintf("%s has not yet started a professional career; %s", in.Subject.Name, signal)
	if len(prestige) > 0 {
		overview = fmt.Sprintf(
			"%s has not yet started a professional career, but internship experience at %s is a strong early signal.",
			in.Subject.Name, strings.Join(prestige, ", "))
	}

	paths := preCareerPaths()
	if len(prestige) > 0 {
		paths = prependPrestigePath(paths, prestige[0])
	}

	return models.Narrative{
		Overview:      overview,
		CareerPattern: signal,
		AIThreatAnalysis: "With no professional history yet, AI exposure is a function of the field chosen next. " +
			"Entry-level routine work is the most automatable; choose a first role with a learning curve, not a task queue.",
		MitigatingFactors: preCareerMitigations(in, prestige),
		CompanyHealth:     "Not applicable before the first professional role.",
		PromotionAnalysis: "Not applicable before the first professional role.",
		GeoMarketContext:  geoContext(in.Subject.Location),
		HiringOutlook:     "Entry-level hiring favors candidates who can show evidence of output: projects, internships, published work.",
		RetrainingPaths:   paths,
		BottomLine:        "Pick one of the entry paths above and commit to it for at least a year; optionality compounds later, focus compounds now.",
	}
}

// preCareerSignal characterizes the pre-career history: student, intern or
// transitional.
func preCareerSignal(in Input) string {
	hasInternship := false
	hasStudentWork := false
	for _, c := range in.Classifications {
		switch c.Class {
		case career.ClassInternship:
			hasInternship = true
		case career.ClassIgnore:
			hasStudentWork = true
		}
	}
	switch {
	case hasInternship:
		return "internship experience exists but no substantive professional role yet."
	case hasStudentWork:
		return "the history shows student and service work only."
	default:
		return "no employment history was found."
	}
}

func preCareerMitigations(in Input, prestige []string) []string {
	out := []string{"A blank professional slate means no function lock-in; every path below is equally open."}
	if len(prestige) > 0 {
		out = append(out, fmt.Sprintf("Prestige internships (%s) clear most early-career screening bars.",
			strings.Join(prestige, ", ")))
	}
	if len(in.Subject.Education) > 0 {
		out = append(out, fmt.Sprintf("Education at %s provides a credential base.", in.Subject.Education[0].School))
	}
	return out
}

// prependPrestigePath puts a prestige-keyed path at rank 1 and drops the
// lowest-ranked table entry to keep exactly four.
func prependPrestigePath(paths []models.RetrainingPath, employer string) []models.RetrainingPath {
	prestige := models.RetrainingPath{
		Rank:        1,
		Title:       "Return Offer Conversion",
		Function:    models.FunctionEngineering,
		TargetLevel: models.LevelStaff,
		FitScore:    90, GrowthScore: 88, AISafeScore: 72,
		Rationale: fmt.Sprintf(
			"An internship at %s is the single strongest lever available: converting it, or trading on it with peer employers, skips years of screening.", employer),
		Skills:           []string{"Internship project portfolio", "Referral cultivation", "Interview preparation"},
		TimeToTransition: "0-3 months",
		SalaryComparison: "Top of entry band",
	}

	out := []models.RetrainingPath{prestige}
	for _, p := range paths {
		if p.Rank == 4 {
			continue
		}
		p.Rank++
		out = append(out, p)
	}
	return out
}
