package career

import (
	"time"

	"github.com/amoghpatel/careerisk/pkg/models"
)

// Stage is the closed set of career stages.
type Stage int

const (
	StagePreCareer Stage = iota
	StageEntryLevel
	StageEarlyCareer
	StageMidCareer
	StageSeniorLeader
	StageSeniorExecutive
	StagePinnacle
)

func (s Stage) String() string {
	switch s {
	case StagePreCareer:
		return "pre_career"
	case StageEntryLevel:
		return "entry_level"
	case StageEarlyCareer:
		return "early_career"
	case StageMidCareer:
		return "mid_career"
	case StageSeniorLeader:
		return "senior_leader"
	case StageSeniorExecutive:
		return "senior_executive"
	default:
		return "pinnacle"
	}
}

// Label is the human-readable form used in prompts and narratives.
func (s Stage) Label() string {
	switch s {
	case StagePreCareer:
		return "Pre-Career"
	case StageEntryLevel:
		return "Entry Level"
	case StageEarlyCareer:
		return "Early Career"
	case StageMidCareer:
		return "Mid Career"
	case StageSeniorLeader:
		return "Senior Leader"
	case StageSeniorExecutive:
		return "Senior Executive"
	default:
		return "Pinnacle"
	}
}

// ClassifyStage decides the subject's career stage. A subject with no real
// job is pre_career regardless of current level or title.
func ClassifyStage(subj models.Subject, now time.Time) Stage {
	if FirstRealJob(subj.Jobs) == nil {
		return StagePreCareer
	}

	title := subj.CurrentTitle
	level := subj.CurrentLevel
	years := YearsExperience(subj.Jobs, now)

	switch {
	case level == models.LevelCTeam || pinnacleTitlePattern.MatchString(title):
		return StagePinnacle
	case level == models.LevelVP || seniorExecTitlePattern.MatchString(title):
		return StageSeniorExecutive
	case level == models.LevelDirector || seniorLeaderTitlePattern.MatchString(title):
		return StageSeniorLeader
	case level == models.LevelManager || level == models.LevelSeniorStaff ||
		midCareerTitlePattern.MatchString(title) || years >= 8:
		return StageMidCareer
	case years >= 3:
		return StageEarlyCareer
	default:
		return StageEntryLevel
	}
}
