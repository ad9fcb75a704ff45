package analyzer

import "osrl-backend/internal/catalog"

// AnalyzeResponses derives one QuestionInsight per catalog question, in
// catalog order. Unanswered questions are treated as the lowest response.
func AnalyzeResponses(responses map[string]int) []QuestionInsight {
	out := make([]QuestionInsight, 0, len(catalog.Questions))
	for _, q := range catalog.Questions {
		response, ok := responses[q.ID]
		if !ok {
			response = 1
		}
		insight := QuestionInsight{
			QuestionID:              q.ID,
			PillarID:                q.PillarID,
			Question:                q.Text,
			Response:                response,
			ResponseLabel:           catalog.OptionLabel(q.ID, response),
			Status:                  classifyStatus(response),
			SpecificIssues:          []string{},
			SpecificRecommendations: []string{},
			DependsOn:               DependsOn(q.ID),
			Affects:                 Affects(q.ID),
			Urgency:                 classifyUrgency(q.ID, response),
			Impact:                  classifyImpact(q.ID, response),
		}
		if response <= 2 {
			insight.SpecificIssues, insight.SpecificRecommendations = issuesFor(q)
		}
		out = append(out, insight)
	}
	return out
}

func classifyStatus(response int) string {
	r := float64(response)
	switch {
	case r <= 1.5:
		return StatusCritical
	case r <= 2.5:
		return StatusWarning
	case r <= 3.5:
		return StatusGood
	default:
		return StatusExcellent
	}
}

// classifyUrgency escalates foundational questions: a weak answer on the
// first question of a pillar blocks everything built on it.
func classifyUrgency(questionID string, response int) string {
	if foundationalQuestions[questionID] && response <= 2 {
		return LevelHigh
	}
	r := float64(response)
	switch {
	case r <= 1.5:
		return LevelHigh
	case r <= 2.5:
		return LevelMedium
	default:
		return LevelLow
	}
}

// classifyImpact escalates by reach: a weak answer that drags several other
// questions down matters more than an isolated one.
func classifyImpact(questionID string, response int) string {
	reach := len(affects[questionID])
	if reach >= 3 && response <= 2 {
		return LevelHigh
	}
	if reach >= 2 && response <= 2 {
		return LevelMedium
	}
	r := float64(response)
	switch {
	case r <= 1.5:
		return LevelHigh
	case r <= 2.5:
		return LevelMedium
	default:
		return LevelLow
	}
}
