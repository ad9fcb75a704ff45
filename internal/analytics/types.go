package analytics

// Risk severities and insight types.
const (
	RiskCritical = "critical"
	RiskWarning  = "warning"

	InsightOpportunity = "opportunity"
	InsightThreat      = "threat"
)

// Effort and impact buckets, in the questionnaire's original language.
const (
	Baixo = "baixo"
	Medio = "médio"
	Alto  = "alto"
)

// RiskFactor flags a pillar whose score puts the organization at risk.
type RiskFactor struct {
	PillarID        string   `json:"pillarId"`
	Pillar          string   `json:"pillar"`
	Severity        string   `json:"severity"`
	Impact          float64  `json:"impact"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// PredictiveInsight is a forward-looking heuristic signal, not a forecast.
type PredictiveInsight struct {
	Type        string  `json:"type"`
	PillarID    string  `json:"pillarId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// BenchmarkData compares pillar scores against fixed industry constants.
type BenchmarkData struct {
	IndustryAverage   map[string]int     `json:"industryAverage"`
	TopPerformers     map[string]int     `json:"topPerformers"`
	PillarPercentiles map[string]float64 `json:"pillarPercentiles"`
	OverallPercentile float64            `json:"overallPercentile"`
}

// MaturityGap describes the step from a pillar's current to its next level.
type MaturityGap struct {
	PillarID     string   `json:"pillarId"`
	Pillar       string   `json:"pillar"`
	CurrentLevel int      `json:"currentLevel"`
	TargetLevel  int      `json:"targetLevel"`
	Effort       string   `json:"effort"`
	Impact       string   `json:"impact"`
	Priority     int      `json:"priority"`
	Actions      []string `json:"actions"`
}

// PriorityItem is one scored action of the prioritization matrix.
type PriorityItem struct {
	PillarID string `json:"pillarId"`
	Action   string `json:"action"`
	Impact   int    `json:"impact"`
	Effort   int    `json:"effort"`
	Priority int    `json:"priority"`
	QuickWin bool   `json:"quickWin"`
}
