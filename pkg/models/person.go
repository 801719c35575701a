// Package models contains shared data models used across the careerisk codebase.
package models

import "time"

// Function is the closed set of job functions reported by the workforce service.
type Function string

const (
	FunctionSales       Function = "Sales and Support"
	FunctionMarketing   Function = "Marketing and Product"
	FunctionBizMgmt     Function = "Business Management"
	FunctionFinance     Function = "Finance and Administration"
	FunctionHR          Function = "Human Resources"
	FunctionEngineering Function = "Engineering"
	FunctionOperations  Function = "Operations"
	FunctionIT          Function = "Information Technology"
	FunctionConsulting  Function = "Consulting"
	FunctionProgramMgmt Function = "Program and Project Management"
	FunctionLegal       Function = "Legal"
	FunctionRisk        Function = "Risk, Safety, Compliance"
	FunctionHealthcare  Function = "Healthcare"
	FunctionEducation   Function = "Education"
)

// Functions lists every known function in a stable order.
var Functions = []Function{
	FunctionSales,
	FunctionMarketing,
	FunctionBizMgmt,
	FunctionFinance,
	FunctionHR,
	FunctionEngineering,
	FunctionOperations,
	FunctionIT,
	FunctionConsulting,
	FunctionProgramMgmt,
	FunctionLegal,
	FunctionRisk,
	FunctionHealthcare,
	FunctionEducation,
}

// Valid reports whether f is a member of the closed function set.
func (f Function) Valid() bool {
	for _, known := range Functions {
		if f == known {
			return true
		}
	}
	return false
}

// Level is the closed ordered set of seniority levels.
type Level string

const (
	LevelIntern      Level = "Intern"
	LevelStaff       Level = "Staff"
	LevelSeniorStaff Level = "Senior Staff"
	LevelConsultant  Level = "Consultant"
	LevelManager     Level = "Manager"
	LevelDirector    Level = "Director"
	LevelVP          Level = "VP"
	LevelCTeam       Level = "C-Team"
)

// Levels lists every level from most junior to most senior.
// Senior Staff and Consultant sit at the same rank.
var Levels = []Level{
	LevelIntern,
	LevelStaff,
	LevelSeniorStaff,
	LevelConsultant,
	LevelManager,
	LevelDirector,
	LevelVP,
	LevelCTeam,
}

var levelRanks = map[Level]int{
	LevelIntern:      0,
	LevelStaff:       1,
	LevelSeniorStaff: 2,
	LevelConsultant:  2,
	LevelManager:     3,
	LevelDirector:    4,
	LevelVP:          5,
	LevelCTeam:       6,
}

// Rank returns the ordinal position of a level. Unknown levels rank below Intern.
func (l Level) Rank() int {
	if r, ok := levelRanks[l]; ok {
		return r
	}
	return -1
}

// Valid reports whether l is a member of the closed level set.
func (l Level) Valid() bool {
	_, ok := levelRanks[l]
	return ok
}

// Job is a single role record in a subject's career history.
// End is the zero time when the role is current. Invariant: Start <= End
// whenever both are set.
type Job struct {
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	CompanyID string    `json:"companyId,omitempty"`
	Function  Function  `json:"function,omitempty"`
	Level     Level     `json:"level,omitempty"`
	Start     time.Time `json:"startDate"`
	End       time.Time `json:"endDate,omitempty"`
}

// Current reports whether the job has no end date.
func (j Job) Current() bool { return j.End.IsZero() }

// Education is a single schooling entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
}

// Subject is the person under assessment, constructed once from the resolver
// response and immutable thereafter. Jobs are ordered most recent first.
type Subject struct {
	Name             string      `json:"name"`
	ProfileURL       string      `json:"profileUrl,omitempty"`
	Location         string      `json:"location,omitempty"`
	CurrentTitle     string      `json:"currentTitle,omitempty"`
	CurrentCompany   string      `json:"currentCompany,omitempty"`
	CurrentCompanyID string      `json:"currentCompanyId,omitempty"`
	CurrentFunction  Function    `json:"currentFunction,omitempty"`
	CurrentLevel     Level       `json:"currentLevel,omitempty"`
	Jobs             []Job       `json:"jobs"`
	Education        []Education `json:"education,omitempty"`
}
