package roadmap

// Recommendation categories, in implementation order.
const (
	CategoryFoundation   = "foundation"
	CategoryProcess      = "process"
	CategoryOptimization = "optimization"
	CategoryCulture      = "culture"
)

// Recommendation priorities, strongest first.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// ImplementationStep is one concrete step of a recommendation's plan.
type ImplementationStep struct {
	Order        int      `json:"order"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Responsible  string   `json:"responsible"`
	Deliverables []string `json:"deliverables"`
	Checkpoints  []string `json:"checkpoints"`
}

// ExpectedImpacts splits a recommendation's payoff by horizon.
type ExpectedImpacts struct {
	ShortTerm  []string `json:"shortTerm"`
	MediumTerm []string `json:"mediumTerm"`
	LongTerm   []string `json:"longTerm"`
}

// ContextualRecommendation is a synthesized improvement plan. Immutable after
// creation.
type ContextualRecommendation struct {
	ID             string               `json:"id"`
	QuestionID     string               `json:"questionId,omitempty"`
	PillarID       string               `json:"pillarId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Priority       string               `json:"priority"`
	Effort         string               `json:"effort"`
	QuickWin       bool                 `json:"quickWin"`
	Steps          []ImplementationStep `json:"steps"`
	SuccessMetrics []string             `json:"successMetrics"`
	Templates      []string             `json:"templates"`
	Impacts        ExpectedImpacts      `json:"impacts"`
}

// ImplementationPlan groups recommendations into the three execution phases.
type ImplementationPlan struct {
	Phase1Foundation   []ContextualRecommendation `json:"phase1Foundation"`
	Phase2Process      []ContextualRecommendation `json:"phase2Process"`
	Phase3Optimization []ContextualRecommendation `json:"phase3Optimization"`
}

// Timeline is the week/month estimate for an implementation plan.
type Timeline struct {
	Phase1Weeks int `json:"phase1Weeks"`
	Phase2Weeks int `json:"phase2Weeks"`
	Phase3Weeks int `json:"phase3Weeks"`
	TotalWeeks  int `json:"totalWeeks"`
	TotalMonths int `json:"totalMonths"`
}

// Investment is a low/high cost band in BRL, with display strings.
type Investment struct {
	Low           int    `json:"low"`
	High          int    `json:"high"`
	FormattedLow  string `json:"formattedLow"`
	FormattedHigh string `json:"formattedHigh"`
}

// RoadmapAction is one action inside a time-boxed roadmap phase.
type RoadmapAction struct {
	PillarID string `json:"pillarId"`
	Action   string `json:"action"`
	Effort   string `json:"effort"`
	Impact   string `json:"impact"`
	QuickWin bool   `json:"quickWin"`
}

// RoadmapPhase is one time-boxed phase of the fixed three-phase roadmap.
type RoadmapPhase struct {
	Name       string          `json:"name"`
	Timeframe  string          `json:"timeframe"`
	Budget     string          `json:"budget"`
	Objectives []string        `json:"objectives"`
	Actions    []RoadmapAction `json:"actions"`
	KPIs       []string        `json:"kpis"`
	Risks      []string        `json:"risks"`
}
