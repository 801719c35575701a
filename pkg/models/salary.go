package models

// SalaryBand is a low/midpoint/high compensation range in whole currency units.
type SalaryBand struct {
	Low      int `json:"low"`
	Midpoint int `json:"midpoint"`
	High     int `json:"high"`
}

// LevelBand keys a band to one level of the subject's function.
type LevelBand struct {
	Level Level      `json:"level"`
	Band  SalaryBand `json:"band"`
}

// AIPressure describes the expected compensation pressure derived from the
// AI risk sub-score.
type AIPressure struct {
	Magnitude string `json:"magnitude"` // Low | Moderate | Elevated | High
	Direction string `json:"direction"` // downward | upward | flat
	PctImpact int    `json:"pctImpact"`
}

// SalaryEstimate is the full salary portion of an assessment: the band for the
// subject's own function/level/location plus per-level progression.
type SalaryEstimate struct {
	Band        SalaryBand  `json:"band"`
	Progression []LevelBand `json:"progression"`
	AIPressure  AIPressure  `json:"aiPressure"`
}
