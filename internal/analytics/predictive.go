package analytics

import "osrl-backend/internal/catalog"

// PredictiveInsights emits heuristic forward-looking signals from the pillar
// scores. Insertion order is fixed: the global signal first, then per-pillar
// signals in catalog order.
func PredictiveInsights(pillarScores map[string]int) []PredictiveInsight {
	out := make([]PredictiveInsight, 0, 4)

	if len(pillarScores) > 0 {
		sum := 0
		for _, score := range pillarScores {
			sum += score
		}
		mean := float64(sum) / float64(len(pillarScores))
		if mean > 75 {
			out = append(out, PredictiveInsight{
				Type:        InsightOpportunity,
				Title:       "Pronto para Transformação Digital Avançada",
				Description: "A maturidade geral permite iniciativas de transformação que organizações menos maduras não sustentariam.",
				Confidence:  0.85,
			})
		} else if mean < 40 {
			out = append(out, PredictiveInsight{
				Type:        InsightThreat,
				Title:       "Risco de estagnação do portfólio",
				Description: "Com a maturidade geral atual, a tendência é de atrasos recorrentes e benefícios não realizados nos próximos ciclos.",
				Confidence:  0.75,
			})
		}
	}

	for _, p := range catalog.Pillars {
		score, ok := pillarScores[p.ID]
		if !ok || score <= 80 {
			continue
		}
		out = append(out, PredictiveInsight{
			Type:        InsightOpportunity,
			PillarID:    p.ID,
			Title:       "Vantagem competitiva em " + p.Name,
			Description: "O pilar " + p.Name + " opera acima do mercado e pode ser explorado como vantagem competitiva.",
			Confidence:  0.8,
		})
	}

	return out
}
