package analytics

import "osrl-backend/internal/catalog"

// SimilarityMatrix computes a bounded similarity score for every ordered
// pillar pair from the pillar means (1–5 scale): 1 on the diagonal,
// max(0, 1 - |meanA-meanB|/4) elsewhere. Symmetric by construction. This is
// a closeness heuristic, not a statistical correlation.
func SimilarityMatrix(pillarAverages map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(pillarAverages))
	for _, a := range catalog.Pillars {
		meanA, ok := pillarAverages[a.ID]
		if !ok {
			continue
		}
		row := make(map[string]float64, len(pillarAverages))
		for _, b := range catalog.Pillars {
			meanB, ok := pillarAverages[b.ID]
			if !ok {
				continue
			}
			if a.ID == b.ID {
				row[b.ID] = 1
				continue
			}
			diff := meanA - meanB
			if diff < 0 {
				diff = -diff
			}
			similarity := 1 - diff/4
			if similarity < 0 {
				similarity = 0
			}
			row[b.ID] = similarity
		}
		out[a.ID] = row
	}
	return out
}
