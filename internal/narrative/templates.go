package narrative

import "github.com/amoghpatel/careerisk/pkg/models"

// Function-indexed template library backing the deterministic fallback.
// Curated data, not logic, so wording can change without recompiling anything
// that matters.

type functionTemplate struct {
	Threat     string
	Mitigation string
}

var functionTemplates = map[models.Function]functionTemplate{
	models.FunctionSales: {
		Threat:     "Outbound prospecting, lead qualification and pipeline hygiene are among the first workflows being automated end to end. Roles built around volume outreach face direct substitution pressure.",
		Mitigation: "Relationship-led selling, complex deal navigation and enterprise account ownership remain hard to automate. Moving up the deal-complexity ladder is the strongest hedge.",
	},
	models.FunctionMarketing: {
		Threat:     "Content production, A/B testing and campaign operations are increasingly machine-generated, compressing demand for execution-focused marketing roles.",
		Mitigation: "Brand strategy, positioning and cross-channel judgment still require human taste and market context that models lack.",
	},
	models.FunctionEngineering: {
		Threat:     "Code generation tools are raising the productivity bar, thinning demand for routine implementation work at the junior end.",
		Mitigation: "System design, operational ownership and the ability to review and integrate machine-written code are appreciating skills, not depreciating ones.",
	},
	models.FunctionFinance: {
		Threat:     "Reconciliation, reporting and forecast assembly are being automated aggressively across finance teams.",
		Mitigation: "Judgment-heavy work such as capital allocation, scenario planning and stakeholder communication keeps its premium.",
	},
	models.FunctionHR: {
		Threat:     "Screening, scheduling and routine employee-services tasks are highly exposed to automation.",
		Mitigation: "Organizational design, conflict resolution and leadership coaching remain durably human.",
	},
	models.FunctionOperations: {
		Threat:     "Process monitoring and exception handling are being folded into automated workflows, reducing headcount needs in steady-state operations.",
		Mitigation: "Process design and cross-functional change management grow in value as automation spreads.",
	},
	models.FunctionIT: {
		Threat:     "Ticket triage, provisioning and routine administration are rapidly self-service or automated.",
		Mitigation: "Security posture, vendor strategy and platform architecture resist automation.",
	},
	models.FunctionLegal: {
		Threat:     "Document review and first-draft contract work are increasingly machine-assisted, compressing billable volume at the junior end.",
		Mitigation: "Counseling, negotiation and risk judgment on novel matters remain firmly human work.",
	},
	models.FunctionConsulting: {
		Threat:     "Research synthesis and deck production, the backbone of junior consulting work, are heavily exposed.",
		Mitigation: "Client trust, problem framing and change leadership are the durable consulting assets.",
	},
	models.FunctionProgramMgmt: {
		Threat:     "Status tracking, scheduling and reporting are being absorbed by tooling, the mechanical share of program work.",
		Mitigation: "Stakeholder alignment and risk anticipation across messy organizations remain resistant.",
	},
}

var defaultFunctionTemplate = functionTemplate{
	Threat:     "Routine, rules-based portions of this function are increasingly automatable; roles weighted toward repeatable execution carry the highest exposure.",
	Mitigation: "Judgment, relationships and accountability for outcomes are the components automation reaches last.",
}

func templateFor(fn models.Function) functionTemplate {
	if t, ok := functionTemplates[fn]; ok {
		return t
	}
	return defaultFunctionTemplate
}

// --- stage-keyed retraining path tables ---

func executivePaths() []models.RetrainingPath {
	return []models.RetrainingPath{
		{
			Rank: 1, Title: "Board Director", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelCTeam, FitScore: 85, GrowthScore: 60, AISafeScore: 92,
			Rationale:        "Governance work monetizes accumulated operating judgment and is structurally insulated from automation.",
			Skills:           []string{"Corporate governance", "Audit and risk oversight", "Executive networking"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Per-seat compensation; two to three seats can replace a large share of executive cash pay",
		},
		{
			Rank: 2, Title: "Fractional Executive", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelCTeam, FitScore: 88, GrowthScore: 75, AISafeScore: 90,
			Rationale:        "Fractional leadership lets smaller companies buy senior judgment by the slice; demand grows as full-time executive hiring tightens.",
			Skills:           []string{"Portfolio management", "Rapid diagnosis", "Personal brand building"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable at two or three concurrent engagements",
		},
		{
			Rank: 3, Title: "Strategic Advisor", Function: models.FunctionConsulting,
			TargetLevel: models.LevelVP, FitScore: 80, GrowthScore: 65, AISafeScore: 88,
			Rationale:        "Advisory work trades on pattern recognition across companies, the least automatable executive asset.",
			Skills:           []string{"Advisory selling", "Market mapping", "Concise written judgment"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Variable; typically 60-90% of executive cash compensation",
		},
		{
			Rank: 4, Title: "Operating Partner", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelDirector, FitScore: 75, GrowthScore: 70, AISafeScore: 85,
			Rationale:        "Private-capital firms pay for operators who can be dropped into portfolio companies and move numbers.",
			Skills:           []string{"Value-creation planning", "Due diligence", "Interim leadership"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable base with carry upside",
		},
	}
}

func seniorLeaderPaths() []models.RetrainingPath {
	return []models.RetrainingPath{
		{
			Rank: 1, Title: "General Manager", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelVP, FitScore: 82, GrowthScore: 78, AISafeScore: 85,
			Rationale:        "P&L ownership is the natural next rung and concentrates the judgment work automation cannot take.",
			Skills:           []string{"P&L management", "Cross-functional leadership", "Commercial strategy"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "10-30% above current band",
		},
		{
			Rank: 2, Title: "VP of Operations", Function: models.FunctionOperations,
			TargetLevel: models.LevelVP, FitScore: 78, GrowthScore: 72, AISafeScore: 80,
			Rationale:        "Companies automating their processes need senior leaders to own the redesign, a growing rather than shrinking mandate.",
			Skills:           []string{"Process architecture", "Automation vendor evaluation", "Org design"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable to 20% above",
		},
		{
			Rank: 3, Title: "Head of Strategy", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelDirector, FitScore: 75, GrowthScore: 70, AISafeScore: 82,
			Rationale:        "Strategy roles reward exactly the synthesis and framing skills that survive automation.",
			Skills:           []string{"Market analysis", "Strategic planning", "Board-level communication"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable",
		},
		{
			Rank: 4, Title: "Management Consultant", Function: models.FunctionConsulting,
			TargetLevel: models.LevelDirector, FitScore: 72, GrowthScore: 68, AISafeScore: 75,
			Rationale:        "Senior operators convert directly into consulting practices serving their former function.",
			Skills:           []string{"Client development", "Engagement management", "Structured problem solving"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Variable; often comparable with independence upside",
		},
	}
}

func midCareerPaths() []models.RetrainingPath {
	return []models.RetrainingPath{
		{
			Rank: 1, Title: "Product Manager", Function: models.FunctionMarketing,
			TargetLevel: models.LevelManager, FitScore: 78, GrowthScore: 85, AISafeScore: 75,
			Rationale:        "Product roles sit at the judgment intersection of customer, business and technology, a durable position.",
			Skills:           []string{"Roadmap prioritization", "User research", "Stakeholder management"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable to 15% above",
		},
		{
			Rank: 2, Title: "Revenue Operations Manager", Function: models.FunctionOperations,
			TargetLevel: models.LevelManager, FitScore: 75, GrowthScore: 80, AISafeScore: 70,
			Rationale:        "The people who run the automation tooling replace the people the tooling replaced.",
			Skills:           []string{"CRM administration", "Pipeline analytics", "Process automation"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable",
		},
		{
			Rank: 3, Title: "Solutions Engineer", Function: models.FunctionEngineering,
			TargetLevel: models.LevelSeniorStaff, FitScore: 70, GrowthScore: 78, AISafeScore: 78,
			Rationale:        "Pre-sales engineering pairs technical credibility with live customer judgment that models cannot stand in for.",
			Skills:           []string{"Technical demos", "Solution architecture", "Discovery questioning"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable with commission upside",
		},
		{
			Rank: 4, Title: "Program Manager", Function: models.FunctionProgramMgmt,
			TargetLevel: models.LevelManager, FitScore: 72, GrowthScore: 70, AISafeScore: 68,
			Rationale:        "Cross-team delivery work rewards organizational navigation, which automates poorly.",
			Skills:           []string{"Dependency management", "Executive reporting", "Risk tracking"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable",
		},
	}
}

func earlyCareerPaths() []models.RetrainingPath {
	return []models.RetrainingPath{
		{
			Rank: 1, Title: "Customer Success Manager", Function: models.FunctionSales,
			TargetLevel: models.LevelStaff, FitScore: 75, GrowthScore: 80, AISafeScore: 70,
			Rationale:        "Retention work is relationship-led and sits on the safer side of the sales function.",
			Skills:           []string{"Account management", "Product fluency", "Renewal negotiation"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable",
		},
		{
			Rank: 2, Title: "Data Analyst", Function: models.FunctionIT,
			TargetLevel: models.LevelStaff, FitScore: 70, GrowthScore: 85, AISafeScore: 65,
			Rationale:        "Analytical literacy compounds across every later role even as the tooling automates the mechanics.",
			Skills:           []string{"SQL", "Dashboarding", "Statistical reasoning"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable to 10% above",
		},
		{
			Rank: 3, Title: "Operations Analyst", Function: models.FunctionOperations,
			TargetLevel: models.LevelStaff, FitScore: 72, GrowthScore: 75, AISafeScore: 62,
			Rationale:        "Operations exposure early builds the process judgment that senior automation-era roles demand.",
			Skills:           []string{"Process mapping", "Spreadsheet modeling", "Vendor coordination"},
			TimeToTransition: "3-6 months",
			SalaryComparison: "Comparable",
		},
		{
			Rank: 4, Title: "Sales Engineer Associate", Function: models.FunctionEngineering,
			TargetLevel: models.LevelStaff, FitScore: 65, GrowthScore: 78, AISafeScore: 72,
			Rationale:        "Technical-adjacent customer work is a growing entry lane with a defensible human core.",
			Skills:           []string{"Technical curiosity", "Demo delivery", "Written communication"},
			TimeToTransition: "6-12 months",
			SalaryComparison: "Comparable with upside",
		},
	}
}

func preCareerPaths() []models.RetrainingPath {
	return []models.RetrainingPath{
		{
			Rank: 1, Title: "Rotational Program Associate", Function: models.FunctionBizMgmt,
			TargetLevel: models.LevelStaff, FitScore: 75, GrowthScore: 85, AISafeScore: 70,
			Rationale:        "Structured rotations compress the function-sampling that otherwise takes years.",
			Skills:           []string{"Adaptability", "Business writing", "Basic analytics"},
			TimeToTransition: "0-6 months",
			SalaryComparison: "Entry band for chosen function",
		},
		{
			Rank: 2, Title: "Junior Data Analyst", Function: models.FunctionIT,
			TargetLevel: models.LevelStaff, FitScore: 70, GrowthScore: 88, AISafeScore: 65,
			Rationale:        "Data skills are the broadest entry-level multiplier across functions.",
			Skills:           []string{"SQL", "Spreadsheets", "Visualization"},
			TimeToTransition: "3-9 months",
			SalaryComparison: "Entry band, above median for first roles",
		},
		{
			Rank: 3, Title: "Associate Product Specialist", Function: models.FunctionMarketing,
			TargetLevel: models.LevelStaff, FitScore: 68, GrowthScore: 80, AISafeScore: 68,
			Rationale:        "Customer-facing product work builds the communication record early hiring screens for.",
			Skills:           []string{"Product fluency", "Customer empathy", "Demo delivery"},
			TimeToTransition: "0-6 months",
			SalaryComparison: "Entry band",
		},
		{
			Rank: 4, Title: "Business Operations Coordinator", Function: models.FunctionOperations,
			TargetLevel: models.LevelStaff, FitScore: 65, GrowthScore: 72, AISafeScore: 55,
			Rationale:        "Broad operational exposure at the cost of higher routine-task automation risk.",
			Skills:           []string{"Scheduling", "Process documentation", "Cross-team coordination"},
			TimeToTransition: "0-3 months",
			SalaryComparison: "Entry band",
		},
	}
}

func pathsForStage(stage stageKey) []models.RetrainingPath {
	switch stage {
	case stageKeyExecutive:
		return executivePaths()
	case stageKeySeniorLeader:
		return seniorLeaderPaths()
	case stageKeyMidCareer:
		return midCareerPaths()
	default:
		return earlyCareerPaths()
	}
}

type stageKey int

const (
	stageKeyEarly stageKey = iota
	stageKeyMidCareer
	stageKeySeniorLeader
	stageKeyExecutive
)
