package scoring

import (
	"errors"
	"math"

	"osrl-backend/internal/catalog"
)

// ErrNoResponses is returned when a score is requested for an empty response
// set. Callers must surface it instead of displaying a zero level.
var ErrNoResponses = errors.New("no responses provided")

// levelBreakpoints maps the upper bound of a mean response (1.0–5.0) to an
// OSRL level. Checked in order; the last bucket is open-ended.
var levelBreakpoints = []struct {
	max   float64
	level int
}{
	{1.5, 1},
	{2.0, 2},
	{2.5, 3},
	{3.0, 4},
	{3.5, 5},
	{4.0, 6},
	{4.2, 7},
	{4.6, 8},
}

// OSRLLevel maps the mean response value to a discrete maturity level 1–9.
// Any non-empty subset of the catalog's questions is accepted.
func OSRLLevel(responses map[string]int) (int, error) {
	if len(responses) == 0 {
		return 0, ErrNoResponses
	}
	sum := 0
	for _, v := range responses {
		sum += v
	}
	average := float64(sum) / float64(len(responses))
	for _, bp := range levelBreakpoints {
		if average <= bp.max {
			return bp.level, nil
		}
	}
	return 9, nil
}

// PillarScores computes a 0–100 score per pillar from the answered questions.
// Pillars with no answered questions are omitted; callers default missing
// entries to 0 for display only.
func PillarScores(responses map[string]int) map[string]int {
	out := make(map[string]int, len(catalog.Pillars))
	for _, p := range catalog.Pillars {
		sum := 0
		count := 0
		for _, q := range catalog.QuestionsForPillar(p.ID) {
			if v, ok := responses[q.ID]; ok {
				sum += v
				count++
			}
		}
		if count == 0 {
			continue
		}
		mean := float64(sum) / float64(count)
		out[p.ID] = int(math.Round(mean * 20))
	}
	return out
}

// PillarAverages computes the mean response (1–5 scale) per answered pillar.
// Shared by the analyzer's pattern rules and the analytics similarity matrix.
func PillarAverages(responses map[string]int) map[string]float64 {
	out := make(map[string]float64, len(catalog.Pillars))
	for _, p := range catalog.Pillars {
		sum := 0
		count := 0
		for _, q := range catalog.QuestionsForPillar(p.ID) {
			if v, ok := responses[q.ID]; ok {
				sum += v
				count++
			}
		}
		if count == 0 {
			continue
		}
		out[p.ID] = float64(sum) / float64(count)
	}
	return out
}
