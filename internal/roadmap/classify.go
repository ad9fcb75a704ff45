package roadmap

import (
	"strings"

	"osrl-backend/internal/analytics"
	"osrl-backend/internal/analyzer"
)

// categoryForQuestion maps a question id to a recommendation category by its
// position within the pillar: first questions are foundation, the middle two
// are process, fourth questions are optimization. people4 covers collaboration
// culture rather than tooling, so it classifies as culture.
func categoryForQuestion(questionID string) string {
	if questionID == "people4" {
		return CategoryCulture
	}
	if len(questionID) == 0 {
		return CategoryProcess
	}
	switch questionID[len(questionID)-1] {
	case '1':
		return CategoryFoundation
	case '4':
		return CategoryOptimization
	default:
		return CategoryProcess
	}
}

// priorityForInsight maps an insight's status and urgency to a recommendation
// priority.
func priorityForInsight(status, urgency string) string {
	switch status {
	case analyzer.StatusCritical:
		return PriorityCritical
	case analyzer.StatusWarning:
		if urgency == analyzer.LevelHigh {
			return PriorityHigh
		}
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// effortFromText estimates an effort bucket from the action verbs in a title.
// This is the only place in the package that inspects free text.
func effortFromText(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "documentar") || strings.Contains(lower, "mapear") || strings.Contains(lower, "comunicar"):
		return analytics.Baixo
	case strings.Contains(lower, "implementar") || strings.Contains(lower, "implantar") || strings.Contains(lower, "desenvolver") || strings.Contains(lower, "integrar"):
		return analytics.Alto
	default:
		return analytics.Medio
	}
}

// effortBucket converts a prioritization-matrix effort score to a bucket.
func effortBucket(effort int) string {
	switch {
	case effort <= 2:
		return analytics.Baixo
	case effort <= 3:
		return analytics.Medio
	default:
		return analytics.Alto
	}
}

// impactBucket converts a prioritization-matrix impact score to a bucket.
// Breakpoints kept separate from effortBucket on purpose: impact 4 and above
// is alto.
func impactBucket(impact int) string {
	switch {
	case impact <= 2:
		return analytics.Baixo
	case impact == 3:
		return analytics.Medio
	default:
		return analytics.Alto
	}
}
