package analyzer

// Readiness stages returned by AssessReadiness.
const (
	StageFoundation   = "foundation"
	StageExecution    = "execution"
	StageOptimization = "optimization"
)

// foundationTier is the first question of each pillar, executionTier the
// second. optimizationTier covers the fourth question of six pillars only:
// tech4 is intentionally absent, matching the original questionnaire, so the
// optimization mean is computed over an uneven sample across pillars.
var (
	foundationTier = []string{"gov1", "strategy1", "delivery1", "benefits1", "financial1", "people1", "tech1"}
	executionTier  = []string{"gov2", "strategy2", "delivery2", "benefits2", "financial2", "people2", "tech2"}
	optimizationTier = []string{"gov4", "strategy4", "delivery4", "benefits4", "financial4", "people4"}
)

// pillar of each optimization-tier question, used for the premature-advanced
// check against the pillar's foundation question.
var optimizationFoundation = map[string]string{
	"gov4":       "gov1",
	"strategy4":  "strategy1",
	"delivery4":  "delivery1",
	"benefits4":  "benefits1",
	"financial4": "financial1",
	"people4":    "people1",
}

// AssessReadiness computes the three tier means (1–5 scale, unanswered
// questions counting as 1) and flags weak foundations and practices that
// advanced ahead of their base.
func AssessReadiness(responses map[string]int) ReadinessAssessment {
	assessment := ReadinessAssessment{
		FoundationScore:    tierMean(responses, foundationTier),
		ExecutionScore:     tierMean(responses, executionTier),
		OptimizationScore:  tierMean(responses, optimizationTier),
		MissingFoundations: []string{},
		PrematureAdvanced:  []string{},
	}

	for _, id := range foundationTier {
		if responseOrDefault(responses, id) <= 2 {
			assessment.MissingFoundations = append(assessment.MissingFoundations, id)
		}
	}
	for _, id := range optimizationTier {
		if responseOrDefault(responses, id) >= 4 && responseOrDefault(responses, optimizationFoundation[id]) <= 2 {
			assessment.PrematureAdvanced = append(assessment.PrematureAdvanced, id)
		}
	}

	switch {
	case assessment.FoundationScore < 2.5:
		assessment.Stage = StageFoundation
	case assessment.ExecutionScore < 3.5:
		assessment.Stage = StageExecution
	default:
		assessment.Stage = StageOptimization
	}
	return assessment
}

func tierMean(responses map[string]int, ids []string) float64 {
	sum := 0
	for _, id := range ids {
		sum += responseOrDefault(responses, id)
	}
	return float64(sum) / float64(len(ids))
}

func responseOrDefault(responses map[string]int, id string) int {
	if v, ok := responses[id]; ok {
		return v
	}
	return 1
}
