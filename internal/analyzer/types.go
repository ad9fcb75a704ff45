package analyzer

// Status classifies a single response.
const (
	StatusCritical  = "critical"
	StatusWarning   = "warning"
	StatusGood      = "good"
	StatusExcellent = "excellent"
)

// Urgency and impact share the same three-step scale.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Pattern types emitted by DetectPatterns.
const (
	PatternInconsistency = "inconsistency"
	PatternBottleneck    = "bottleneck"
	PatternEnabler       = "enabler"
	PatternCascadeRisk   = "cascade_risk"
)

// QuestionInsight is the per-question derived classification plus static
// dependency metadata.
type QuestionInsight struct {
	QuestionID              string   `json:"questionId"`
	PillarID                string   `json:"pillarId"`
	Question                string   `json:"question"`
	Response                int      `json:"response"`
	ResponseLabel           string   `json:"responseLabel"`
	Status                  string   `json:"status"`
	SpecificIssues          []string `json:"specificIssues"`
	SpecificRecommendations []string `json:"specificRecommendations"`
	DependsOn               []string `json:"dependsOn"`
	Affects                 []string `json:"affects"`
	Urgency                 string   `json:"urgency"`
	Impact                  string   `json:"impact"`
}

// ResponsePattern is a cross-question or cross-pillar signal detected over the
// full insight set.
type ResponsePattern struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Questions       []string `json:"questions"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// CriticalPathView partitions insights into the three actionability buckets.
// Every insight lands in at most one bucket.
type CriticalPathView struct {
	Blockers  []QuestionInsight `json:"blockers"`
	Enablers  []QuestionInsight `json:"enablers"`
	QuickWins []QuestionInsight `json:"quickWins"`
}

// ReadinessAssessment summarizes how prepared the organization is across the
// three maturity tiers of the questionnaire.
type ReadinessAssessment struct {
	Stage              string   `json:"stage"`
	FoundationScore    float64  `json:"foundationScore"`
	ExecutionScore     float64  `json:"executionScore"`
	OptimizationScore  float64  `json:"optimizationScore"`
	MissingFoundations []string `json:"missingFoundations"`
	PrematureAdvanced  []string `json:"prematureAdvanced"`
}
