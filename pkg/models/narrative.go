package models

import "time"

// RetrainingPath is one of the exactly four ranked transition suggestions in
// a narrative. The three sub-scores are 0-100.
type RetrainingPath struct {
	Rank             int      `json:"rank"`
	Title            string   `json:"title"`
	Function         Function `json:"function"`
	TargetLevel      Level    `json:"targetLevel"`
	FitScore         int      `json:"fitScore"`
	GrowthScore      int      `json:"growthScore"`
	AISafeScore      int      `json:"aiSafeScore"`
	Rationale        string   `json:"rationale"`
	Skills           []string `json:"skills"`
	TimeToTransition string   `json:"timeToTransition"`
	SalaryComparison string   `json:"salaryComparison"`
}

// Narrative is the long-form structured assessment text, either produced by
// the LLM or deterministically as a fallback.
type Narrative struct {
	Overview          string           `json:"overview"`
	CareerPattern     string           `json:"careerPattern"`
	AIThreatAnalysis  string           `json:"aiThreatAnalysis"`
	MitigatingFactors []string         `json:"mitigatingFactors"`
	CompanyHealth     string           `json:"companyHealth"`
	PromotionAnalysis string           `json:"promotionAnalysis"`
	GeoMarketContext  string           `json:"geoMarketContext"`
	HiringOutlook     string           `json:"hiringOutlook"`
	RetrainingPaths   []RetrainingPath `json:"retrainingPaths"`
	BottomLine        string           `json:"bottomLine"`
}

// AssessmentResult is the top-level object returned to the caller.
type AssessmentResult struct {
	Person      Subject        `json:"person"`
	Scores      Scores         `json:"scores"`
	Company     CompanySummary `json:"company"`
	Salary      SalaryEstimate `json:"salary"`
	Narrative   Narrative      `json:"narrative"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
