// Package career classifies job histories: per-role classification, first real
// job, years of experience, functional depth and career stage. Everything here
// is pure; callers inject the clock.
package career

import (
	"strings"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// RoleClass is the closed set of per-role classifications.
type RoleClass int

const (
	ClassIgnore RoleClass = iota
	ClassInternship
	ClassReal
)

func (c RoleClass) String() string {
	switch c {
	case ClassIgnore:
		return "ignore"
	case ClassInternship:
		return "internship"
	default:
		return "real"
	}
}

// Classification tags one job. Prestige is only meaningful for internships.
type Classification struct {
	Class    RoleClass
	Prestige bool
}

// Classify maps a job to exactly one role class. It depends only on title,
// level and company, and is deterministic.
func Classify(job models.Job) Classification {
	if job.Level == models.LevelIntern {
		return Classification{Class: ClassInternship, Prestige: isPrestigeEmployer(job.Company)}
	}
	for _, p := range ignoreTitlePatterns {
		if p.MatchString(job.Title) {
			return Classification{Class: ClassIgnore}
		}
	}
	if internTitlePattern.MatchString(job.Title) {
		return Classification{Class: ClassInternship, Prestige: isPrestigeEmployer(job.Company)}
	}
	return Classification{Class: ClassReal}
}

// isPrestigeEmployer matches the curated list case-insensitively, partial in
// both directions, so "Google LLC" and "Goo" both hit "Google" only when one
// contains the other.
func isPrestigeEmployer(company string) bool {
	c := strings.ToLower(strings.TrimSpace(company))
	if c == "" {
		return false
	}
	for _, p := range prestigeEmployers {
		pl := strings.ToLower(p)
		if strings.Contains(c, pl) || strings.Contains(pl, c) {
			return true
		}
	}
	return false
}

// FirstRealJob returns the earliest-starting job classified as real, or nil
// when the subject has none.
func FirstRealJob(jobs []models.Job) *models.Job {
	var first *models.Job
	for i := range jobs {
		if Classify(jobs[i]).Class != ClassReal {
			continue
		}
		if jobs[i].Start.IsZero() {
			continue
		}
		if first == nil || jobs[i].Start.Before(first.Start) {
			first = &jobs[i]
		}
	}
	return first
}

const yearHours = 24 * 365.25

// YearsExperience counts whole years since the first real job started.
// Pre-career subjects have zero.
func YearsExperience(jobs []models.Job, now time.Time) int {
	first := FirstRealJob(jobs)
	if first == nil {
		return 0
	}
	years := int(now.Sub(first.Start).Hours()/yearHours + 0.5)
	if years < 0 {
		return 0
	}
	return years
}

// PrestigeInternships returns the companies of internships flagged prestige,
// deduplicated, in history order.
func PrestigeInternships(jobs []models.Job) []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range jobs {
		c := Classify(j)
		if c.Class != ClassInternship || !c.Prestige || seen[j.Company] {
			continue
		}
		seen[j.Company] = true
		out = append(out, j.Company)
	}
	return out
}
