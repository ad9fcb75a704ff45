package analytics

import "osrl-backend/internal/catalog"

// Fixed industry reference values per pillar, in percentage points. These are
// constants of the framework, not computed from any dataset at runtime.
var (
	industryAverage = map[string]int{
		"gov":       52,
		"strategy":  55,
		"delivery":  58,
		"benefits":  45,
		"financial": 50,
		"people":    54,
		"tech":      60,
	}
	topPerformers = map[string]int{
		"gov":       85,
		"strategy":  88,
		"delivery":  90,
		"benefits":  80,
		"financial": 84,
		"people":    86,
		"tech":      92,
	}
)

// Benchmark positions the pillar scores against the fixed industry constants.
// Percentile = clamp(0, 100, 50 + (score-avg)/avg * 30); the overall
// percentile applies the same formula to the unweighted means over the
// answered pillars.
func Benchmark(pillarScores map[string]int) BenchmarkData {
	data := BenchmarkData{
		IndustryAverage:   industryAverage,
		TopPerformers:     topPerformers,
		PillarPercentiles: make(map[string]float64, len(pillarScores)),
	}

	scoreSum := 0.0
	avgSum := 0.0
	answered := 0
	for _, p := range catalog.Pillars {
		score, ok := pillarScores[p.ID]
		if !ok {
			continue
		}
		avg := industryAverage[p.ID]
		data.PillarPercentiles[p.ID] = percentile(float64(score), float64(avg))
		scoreSum += float64(score)
		avgSum += float64(avg)
		answered++
	}
	if answered > 0 {
		data.OverallPercentile = percentile(scoreSum/float64(answered), avgSum/float64(answered))
	}
	return data
}

func percentile(score, industryAvg float64) float64 {
	value := 50 + (score-industryAvg)/industryAvg*30
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
