package career

import (
	"fmt"
	"sort"
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// DepthBucket is the closed set of functional-depth buckets.
type DepthBucket string

const (
	DepthDeepSpecialist      DepthBucket = "deep_specialist"
	DepthPrimaryWithExposure DepthBucket = "primary_with_exposure"
	DepthMultiFunctional     DepthBucket = "multi_functional"
	DepthGeneralist          DepthBucket = "generalist"
)

// FunctionalProfile is derived from the real jobs only.
type FunctionalProfile struct {
	Dominant        models.Function
	DominantShare   float64
	Depth           DepthBucket
	YearsByFunction map[models.Function]float64
	CrossFunctional bool
	Summary         string
}

// Every job contributes at least a quarter year so undated current roles
// still carry weight.
const minJobYears = 0.25

// Profile computes the functional-depth profile over the subject's real jobs.
// Returns a zero profile when no real job exists.
func Profile(jobs []models.Job, now time.Time) FunctionalProfile {
	years := map[models.Function]float64{}
	var total float64
	for _, j := range jobs {
		if Classify(j).Class != ClassReal || j.Function == "" {
			continue
		}
		end := j.End
		if end.IsZero() {
			end = now
		}
		y := end.Sub(j.Start).Hours() / yearHours
		if j.Start.IsZero() || y < minJobYears {
			y = minJobYears
		}
		years[j.Function] += y
		total += y
	}
	if total == 0 {
		return FunctionalProfile{}
	}

	p := FunctionalProfile{YearsByFunction: years}
	for fn, y := range years {
		share := y / total
		if share > p.DominantShare || (share == p.DominantShare && fn < p.Dominant) {
			p.Dominant = fn
			p.DominantShare = share
		}
	}

	switch {
	case p.DominantShare >= 0.85:
		p.Depth = DepthDeepSpecialist
	case p.DominantShare >= 0.65:
		p.Depth = DepthPrimaryWithExposure
	case p.DominantShare >= 0.45:
		p.Depth = DepthMultiFunctional
	default:
		p.Depth = DepthGeneralist
	}
	p.CrossFunctional = len(years) >= 3 && p.DominantShare < 0.65
	p.Summary = depthSummary(p)
	return p
}

func depthSummary(p FunctionalProfile) string {
	switch p.Depth {
	case DepthDeepSpecialist:
		return fmt.Sprintf("Deep specialist: %.0f%% of career spent in %s.",
			p.DominantShare*100, p.Dominant)
	case DepthPrimaryWithExposure:
		return fmt.Sprintf("Primarily %s (%.0f%%) with exposure to %s.",
			p.Dominant, p.DominantShare*100, otherFunctions(p))
	case DepthMultiFunctional:
		return fmt.Sprintf("Multi-functional: %s leads (%.0f%%) across %s.",
			p.Dominant, p.DominantShare*100, otherFunctions(p))
	default:
		return fmt.Sprintf("Generalist spanning %s; no single dominant function.",
			otherFunctions(p))
	}
}

func otherFunctions(p FunctionalProfile) string {
	var names []string
	for fn := range p.YearsByFunction {
		if fn != p.Dominant {
			names = append(names, string(fn))
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return string(p.Dominant)
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
