package career

import "regexp"

// The pattern sets and the prestige list are data so they can be curated
// without touching classification logic.

// ignoreTitlePatterns match student and service-industry roles that carry no
// signal for an employment-risk assessment.
var ignoreTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bstudent\b`),
	regexp.MustCompile(`(?i)\bpart[- ]?time\b`),
	regexp.MustCompile(`(?i)\bbarista\b`),
	regexp.MustCompile(`(?i)\b(waiter|waitress|server)\b`),
	regexp.MustCompile(`(?i)\bbartender\b`),
	regexp.MustCompile(`(?i)\bcashier\b`),
	regexp.MustCompile(`(?i)\bretail (associate|assistant|clerk)\b`),
	regexp.MustCompile(`(?i)\bcrew member\b`),
	regexp.MustCompile(`(?i)\b(host|hostess)\b`),
	regexp.MustCompile(`(?i)\bdishwasher\b`),
	regexp.MustCompile(`(?i)\blifeguard\b`),
	regexp.MustCompile(`(?i)\bcamp counselor\b`),
	regexp.MustCompile(`(?i)\bdelivery driver\b`),
	regexp.MustCompile(`(?i)\bvolunteer\b`),
	regexp.MustCompile(`(?i)\bbabysitter\b`),
	regexp.MustCompile(`(?i)\btutor\b`),
}

// internTitlePattern matches the internship title vocabulary.
var internTitlePattern = regexp.MustCompile(
	`(?i)\b(intern|internship|co-?op|fellow|trainee|apprentice|extern|` +
		`(research|teaching) assistant|summer (analyst|associate))\b`)

// prestigeEmployers is the closed curated list of selective employers whose
// internships signal higher capability. Matching is case-insensitive and
// partial in both directions.
var prestigeEmployers = []string{
	"Google",
	"Alphabet",
	"Meta",
	"Facebook",
	"Apple",
	"Amazon",
	"Microsoft",
	"Netflix",
	"Nvidia",
	"OpenAI",
	"Anthropic",
	"DeepMind",
	"Stripe",
	"Palantir",
	"SpaceX",
	"Tesla",
	"Goldman Sachs",
	"Morgan Stanley",
	"JPMorgan",
	"J.P. Morgan",
	"Jane Street",
	"Citadel",
	"Two Sigma",
	"McKinsey",
	"Bain",
	"Boston Consulting Group",
	"BCG",
	"NASA",
	"Y Combinator",
}

// Title pattern sets used by the career-stage decision order. Each stage's
// set is checked against the current title after the level check for that tier.
var (
	pinnacleTitlePattern = regexp.MustCompile(
		`(?i)\b(ceo|cto|cfo|coo|cio|cpo|cmo|chief|founder|co-?founder|president|chair(wo)?man)\b`)
	seniorExecTitlePattern = regexp.MustCompile(
		`(?i)\b(vice president|svp|evp|gm|general manager)\b`)
	seniorLeaderTitlePattern = regexp.MustCompile(
		`(?i)\b(director|head of|principal|fellow|distinguished)\b`)
	midCareerTitlePattern = regexp.MustCompile(
		`(?i)\b(manager|lead|senior|staff|architect)\b`)
)
