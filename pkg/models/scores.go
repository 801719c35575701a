package models

// Scores holds the six risk sub-scores plus the weighted overall score.
// Every value is clamped to [0,100]; higher means more risk.
type Scores struct {
	AIRisk             int `json:"aiRisk"`
	CompanyInstability int `json:"companyInstability"`
	PromotionCeiling   int `json:"promotionCeiling"`
	TenureVolatility   int `json:"tenureVolatility"`
	FunctionChurn      int `json:"functionChurn"`
	SalaryCompression  int `json:"salaryCompression"`
	Overall            int `json:"overall"`
}
