// Package narrative produces the long-form structured assessment: an LLM
// generation grounded in the computed data, with a deterministic fallback
// when the LLM is unavailable, times out or returns something unparseable.
package narrative

import (
	"context"
	"log/slog"

	"github.com/amoghpatel/careerisk/internal/career"
	"github.com/amoghpatel/careerisk/internal/llm"
	"github.com/amoghpatel/careerisk/pkg/models"
)

// Sized for a 2-3 KB JSON response with headroom.
const maxResponseTokens = 3000

// HiringSignals are optional pre-fetched hiring context sections, included in
// the prompt when supplied.
type HiringSignals struct {
	RegionalDemand  string `json:"regionalDemand,omitempty"`
	EmployerNetwork string `json:"employerNetwork,omitempty"`
	SchoolNetwork   string `json:"schoolNetwork,omitempty"`
	MultiSignal     string `json:"multiSignal,omitempty"`
}

// Input carries everything the generator needs. Classifications is parallel
// to Subject.Jobs.
type Input struct {
	Subject         models.Subject
	Stage           career.Stage
	Years           int
	Profile         career.FunctionalProfile
	Classifications []career.Classification
	Scores          models.Scores
	Company         models.CompanySummary
	Salary          models.SalaryEstimate
	HiringSignals   *HiringSignals
}

// Generator builds the narrative. A nil Messenger always falls back.
type Generator struct {
	llm llm.Messenger
}

func NewGenerator(m llm.Messenger) *Generator {
	return &Generator{llm: m}
}

// Generate never fails: pre-career subjects get the deterministic pre-career
// form without an LLM call, and every LLM failure degrades to the
// deterministic fallback.
func (g *Generator) Generate(ctx context.Context, in Input) models.Narrative {
	if in.Stage == career.StagePreCareer {
		return preCareerNarrative(in)
	}
	if g.llm == nil {
		return fallbackNarrative(in)
	}

	resp, err := g.llm.CreateMessage(ctx, llm.MessagesRequest{
		MaxTokens: maxResponseTokens,
		System:    systemInstruction,
		Messages:  []llm.Message{llm.UserText(buildPrompt(in))},
	})
	if err != nil {
		slog.Warn("narrative generation failed, using fallback", "error", err)
		return fallbackNarrative(in)
	}

	n, err := ParseNarrative(resp.TextContent())
	if err != nil {
		slog.Warn("narrative response unparseable, using fallback", "error", err)
		return fallbackNarrative(in)
	}
	return n
}
