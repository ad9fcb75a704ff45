package roadmap

import (
	"fmt"
	"math"
	"sort"

	"osrl-backend/internal/analytics"
)

var (
	categoryOrder = map[string]int{
		CategoryFoundation:   0,
		CategoryProcess:      1,
		CategoryOptimization: 2,
		CategoryCulture:      3,
	}
	priorityOrder = map[string]int{
		PriorityCritical: 0,
		PriorityHigh:     1,
		PriorityMedium:   2,
		PriorityLow:      3,
	}
)

// AssignPhases buckets recommendations into the three execution phases.
// Foundation work that is not critical yet stays out of the plan until the
// next reassessment.
func AssignPhases(recs []ContextualRecommendation) ImplementationPlan {
	var plan ImplementationPlan
	for _, rec := range recs {
		switch {
		case rec.Category == CategoryFoundation && rec.Priority == PriorityCritical:
			plan.Phase1Foundation = append(plan.Phase1Foundation, rec)
		case rec.Category == CategoryProcess && (rec.Priority == PriorityCritical || rec.Priority == PriorityHigh):
			plan.Phase2Process = append(plan.Phase2Process, rec)
		case rec.Category == CategoryOptimization || rec.Category == CategoryCulture:
			plan.Phase3Optimization = append(plan.Phase3Optimization, rec)
		}
	}
	return plan
}

// CriticalPath returns the ids of the critical recommendations in execution
// order: foundation before process before optimization before culture, ties
// broken by priority order and then input order.
func CriticalPath(recs []ContextualRecommendation) []string {
	critical := make([]ContextualRecommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.Priority == PriorityCritical {
			critical = append(critical, rec)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool {
		if categoryOrder[critical[i].Category] != categoryOrder[critical[j].Category] {
			return categoryOrder[critical[i].Category] < categoryOrder[critical[j].Category]
		}
		return priorityOrder[critical[i].Priority] < priorityOrder[critical[j].Priority]
	})
	ids := make([]string, len(critical))
	for i, rec := range critical {
		ids[i] = rec.ID
	}
	return ids
}

// phaseParams are the floor and per-item week costs of each phase.
var phaseParams = [3]struct{ floor, perItem int }{
	{12, 8},
	{16, 6},
	{20, 4},
}

// EstimateTimeline sizes each phase by item count against its floor.
func EstimateTimeline(plan ImplementationPlan) Timeline {
	weeks := func(n, phase int) int {
		p := phaseParams[phase]
		if w := n * p.perItem; w > p.floor {
			return w
		}
		return p.floor
	}
	t := Timeline{
		Phase1Weeks: weeks(len(plan.Phase1Foundation), 0),
		Phase2Weeks: weeks(len(plan.Phase2Process), 1),
		Phase3Weeks: weeks(len(plan.Phase3Optimization), 2),
	}
	t.TotalWeeks = t.Phase1Weeks + t.Phase2Weeks + t.Phase3Weeks
	t.TotalMonths = int(math.Ceil(float64(t.TotalWeeks) / 4))
	return t
}

// Base implementation cost per effort bucket, in BRL.
var investmentBase = map[string]int{
	analytics.Baixo: 50000,
	analytics.Medio: 150000,
	analytics.Alto:  300000,
}

// EstimateInvestment sums a 0.7x-1.3x cost band over all recommendations.
func EstimateInvestment(recs []ContextualRecommendation) Investment {
	base := 0
	for _, rec := range recs {
		cost, ok := investmentBase[rec.Effort]
		if !ok {
			cost = investmentBase[analytics.Medio]
		}
		base += cost
	}
	inv := Investment{
		Low:  int(math.Round(float64(base) * 0.7)),
		High: int(math.Round(float64(base) * 1.3)),
	}
	inv.FormattedLow = formatThousands(inv.Low)
	inv.FormattedHigh = formatThousands(inv.High)
	return inv
}

func formatThousands(amount int) string {
	return fmt.Sprintf("R$ %dk", int(math.Round(float64(amount)/1000)))
}
