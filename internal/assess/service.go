// Package assess is the top-level assessment pipeline: resolve the subject,
// fan out the workforce-data queries, score, estimate salary and generate the
// narrative.
package assess

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amoghpatel/careerisk/internal/career"
	"github.com/amoghpatel/careerisk/internal/narrative"
	"github.com/amoghpatel/careerisk/internal/salary"
	"github.com/amoghpatel/careerisk/internal/scoring"
	"github.com/amoghpatel/careerisk/internal/workforce"
	"github.com/amoghpatel/careerisk/pkg/models"
)

// Sentinel errors surfaced to the HTTP layer. Everything else is absorbed
// into degraded output.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("subject not found")
)

const defaultTimeout = 60 * time.Second

// Options tune the assessment windows. The flows window is surfaced as a
// parameter because different consumers legitimately want 6 or 12 months.
type Options struct {
	Timeout            time.Duration
	DemographicsMonths int
	FlowsMonths        int
}

func (o *Options) applyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.DemographicsMonths <= 0 {
		o.DemographicsMonths = 24
	}
	if o.FlowsMonths <= 0 {
		o.FlowsMonths = 12
	}
}

// Request identifies the subject. Name or ProfileURL is required.
type Request struct {
	Name       string
	Company    string
	ProfileURL string
}

// Service drives one assessment end to end. Now is injectable for
// deterministic tests and defaults to time.Now.
type Service struct {
	workforce workforce.Client
	narrative *narrative.Generator
	opts      Options
	now       func() time.Time
}

func NewService(wf workforce.Client, gen *narrative.Generator, opts Options) *Service {
	opts.applyDefaults()
	return &Service{
		workforce: wf,
		narrative: gen,
		opts:      opts,
		now:       time.Now,
	}
}

// WithClock overrides the clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Assess runs the full pipeline. Only subject-resolution problems surface as
// errors; workforce and LLM failures degrade per the component contracts.
func (s *Service) Assess(ctx context.Context, req Request) (*models.AssessmentResult, error) {
	if req.Name == "" && req.ProfileURL == "" {
		return nil, fmt.Errorf("%w: name or profile URL is required", ErrBadRequest)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	var candidates []models.Subject
	if req.ProfileURL != "" {
		slug := workforce.SlugFromProfileURL(req.ProfileURL)
		candidates = s.workforce.FindByProfileSlug(ctx, slug)
	} else {
		candidates = s.workforce.FindByName(ctx, req.Name, req.Company)
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	subject := candidates[0]
	if subject.CurrentCompanyID == "" {
		return nil, fmt.Errorf("%w: could not determine current company", ErrBadRequest)
	}

	now := s.now()
	demoFrom := now.AddDate(0, -s.opts.DemographicsMonths, 0)
	flowsFrom := now.AddDate(0, -s.opts.FlowsMonths, 0)

	// Three-way parallel fan-out. Each workforce call absorbs its own failure
	// and yields empty, so the group never aborts.
	var (
		demo       []models.DemographicsRow
		flows      []models.FlowsRow
		levelFlows []models.FlowsRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		demo = s.workforce.Demographics(gctx, subject.CurrentCompanyID, demoFrom, now)
		return nil
	})
	g.Go(func() error {
		flows = s.workforce.Flows(gctx, subject.CurrentCompanyID, flowsFrom, now)
		return nil
	})
	g.Go(func() error {
		levelFlows = s.workforce.FlowsByLevel(gctx, subject.CurrentCompanyID, flowsFrom, now)
		return nil
	})
	_ = g.Wait()

	summary := workforce.Summarize(demo, flows, subject.CurrentFunction)
	scores := scoring.Compute(subject, demo, flows, levelFlows)
	salaryEstimate := salary.Estimate(subject.CurrentFunction, subject.CurrentLevel,
		subject.Location, scores.AIRisk)

	classifications := make([]career.Classification, len(subject.Jobs))
	for i, j := range subject.Jobs {
		classifications[i] = career.Classify(j)
	}

	story := s.narrative.Generate(ctx, narrative.Input{
		Subject:         subject,
		Stage:           career.ClassifyStage(subject, now),
		Years:           career.YearsExperience(subject.Jobs, now),
		Profile:         career.Profile(subject.Jobs, now),
		Classifications: classifications,
		Scores:          scores,
		Company:         summary,
		Salary:          salaryEstimate,
	})

	return &models.AssessmentResult{
		Person:      subject,
		Scores:      scores,
		Company:     summary,
		Salary:      salaryEstimate,
		Narrative:   story,
		GeneratedAt: s.now(),
	}, nil
}
