package assessments

import (
	"math"

	"osrl-backend/internal/analytics"
	"osrl-backend/internal/analyzer"
	"osrl-backend/internal/catalog"
	"osrl-backend/internal/roadmap"
	"osrl-backend/internal/scoring"
)

// Result is the full analytical output of one questionnaire run. Plain data,
// serializable to JSON with no cycles.
type Result struct {
	OSRLLevel          int                                `json:"osrlLevel"`
	Level              catalog.LevelDescriptor            `json:"level"`
	OverallScore       int                                `json:"overallScore"`
	PillarScores       map[string]int                     `json:"pillarScores"`
	Insights           []analyzer.QuestionInsight         `json:"insights"`
	Patterns           []analyzer.ResponsePattern         `json:"patterns"`
	CriticalPath       analyzer.CriticalPathView          `json:"criticalPath"`
	Readiness          analyzer.ReadinessAssessment       `json:"readiness"`
	Similarity         map[string]map[string]float64      `json:"similarity"`
	Risks              []analytics.RiskFactor             `json:"risks"`
	PredictiveInsights []analytics.PredictiveInsight      `json:"predictiveInsights"`
	Benchmark          analytics.BenchmarkData            `json:"benchmark"`
	Gaps               []analytics.MaturityGap            `json:"gaps"`
	Priorities         []analytics.PriorityItem           `json:"priorities"`
	Recommendations    []roadmap.ContextualRecommendation `json:"recommendations"`
	Plan               roadmap.ImplementationPlan         `json:"plan"`
	CriticalPathOrder  []string                           `json:"criticalPathOrder"`
	Timeline           roadmap.Timeline                   `json:"timeline"`
	Investment         roadmap.Investment                 `json:"investment"`
	Roadmap            []roadmap.RoadmapPhase             `json:"roadmap"`
}

// Compute runs the whole pipeline over one response set. Pure and safe for
// concurrent callers.
func Compute(responses map[string]int) (Result, error) {
	level, err := scoring.OSRLLevel(responses)
	if err != nil {
		return Result{}, err
	}
	pillarScores := scoring.PillarScores(responses)
	pillarAverages := scoring.PillarAverages(responses)

	insights := analyzer.AnalyzeResponses(responses)
	patterns := analyzer.DetectPatterns(insights, pillarAverages)
	path := analyzer.CriticalPath(insights)
	readiness := analyzer.AssessReadiness(responses)

	recs := roadmap.BuildRecommendations(insights, patterns, path)
	plan := roadmap.AssignPhases(recs)
	priorities := analytics.PrioritizationMatrix(pillarScores)

	result := Result{
		OSRLLevel:          level,
		OverallScore:       overallScore(pillarScores),
		PillarScores:       pillarScores,
		Insights:           insights,
		Patterns:           patterns,
		CriticalPath:       path,
		Readiness:          readiness,
		Similarity:         analytics.SimilarityMatrix(pillarAverages),
		Risks:              analytics.RiskFactors(pillarScores),
		PredictiveInsights: analytics.PredictiveInsights(pillarScores),
		Benchmark:          analytics.Benchmark(pillarScores),
		Gaps:               analytics.MaturityGaps(pillarScores),
		Priorities:         priorities,
		Recommendations:    recs,
		Plan:               plan,
		CriticalPathOrder:  roadmap.CriticalPath(recs),
		Timeline:           roadmap.EstimateTimeline(plan),
		Investment:         roadmap.EstimateInvestment(recs),
		Roadmap:            roadmap.BuildRoadmap(priorities),
	}
	if desc, ok := catalog.LevelByNumber(level); ok {
		result.Level = desc
	}
	return result, nil
}

// overallScore is the unweighted mean of the answered pillar scores.
func overallScore(pillarScores map[string]int) int {
	if len(pillarScores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range pillarScores {
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(pillarScores))))
}
