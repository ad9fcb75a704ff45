package roadmap

import (
	"strings"
	"testing"

	"osrl-backend/internal/analytics"
	"osrl-backend/internal/analyzer"
	"osrl-backend/internal/catalog"
	"osrl-backend/internal/scoring"
)

func uniformResponses(value int) map[string]int {
	out := make(map[string]int, len(catalog.Questions))
	for _, q := range catalog.Questions {
		out[q.ID] = value
	}
	return out
}

func buildRecs(t *testing.T, responses map[string]int) []ContextualRecommendation {
	t.Helper()
	insights := analyzer.AnalyzeResponses(responses)
	patterns := analyzer.DetectPatterns(insights, scoring.PillarAverages(responses))
	path := analyzer.CriticalPath(insights)
	return BuildRecommendations(insights, patterns, path)
}

func TestBuildRecommendationsAllCritical(t *testing.T) {
	recs := buildRecs(t, uniformResponses(1))

	ids := make(map[string]bool, len(recs))
	for _, rec := range recs {
		if ids[rec.ID] {
			t.Errorf("duplicate recommendation id %s", rec.ID)
		}
		ids[rec.ID] = true
		if len(rec.Steps) == 0 {
			t.Errorf("recommendation %s has no steps", rec.ID)
		}
		if rec.Effort == "" || rec.Priority == "" || rec.Category == "" {
			t.Errorf("recommendation %s missing classification: %+v", rec.ID, rec)
		}
	}
	if !ids["rec-gov1"] || !ids["rec-delivery1"] || !ids["rec-benefits1"] {
		t.Fatalf("expected authored recommendations present, got ids %v", ids)
	}

	// Authored templates carry the full plan; generics get three steps.
	for _, rec := range recs {
		switch rec.ID {
		case "rec-gov1":
			if len(rec.Steps) != 4 || len(rec.Templates) == 0 {
				t.Errorf("gov1 template not applied: %+v", rec)
			}
		case "rec-tech3":
			if len(rec.Steps) != 3 {
				t.Errorf("generic template should have 3 steps, got %d", len(rec.Steps))
			}
		}
	}
}

func TestBuildRecommendationsSkipsHealthyQuestions(t *testing.T) {
	recs := buildRecs(t, uniformResponses(4))
	for _, rec := range recs {
		if strings.HasPrefix(rec.ID, "rec-") && rec.QuestionID != "" && !rec.QuickWin {
			t.Fatalf("healthy responses should produce no question recommendations, got %s", rec.ID)
		}
	}
}

func TestBuildRecommendationsPatternsAreCrossFunctional(t *testing.T) {
	responses := uniformResponses(3)
	responses["gov1"], responses["gov2"], responses["gov3"], responses["gov4"] = 5, 5, 4, 4
	responses["delivery1"], responses["delivery2"], responses["delivery3"], responses["delivery4"] = 2, 2, 2, 2

	recs := buildRecs(t, responses)
	found := false
	for _, rec := range recs {
		if !strings.HasPrefix(rec.ID, "rec-pattern-") {
			continue
		}
		found = true
		if rec.PillarID != "cross-functional" || rec.Category != CategoryProcess {
			t.Errorf("pattern recommendation misclassified: %+v", rec)
		}
	}
	if !found {
		t.Fatalf("expected a pattern recommendation for the governance/delivery gap")
	}
}

func TestAssignPhases(t *testing.T) {
	recs := []ContextualRecommendation{
		{ID: "a", Category: CategoryFoundation, Priority: PriorityCritical},
		{ID: "b", Category: CategoryFoundation, Priority: PriorityHigh},
		{ID: "c", Category: CategoryProcess, Priority: PriorityCritical},
		{ID: "d", Category: CategoryProcess, Priority: PriorityHigh},
		{ID: "e", Category: CategoryProcess, Priority: PriorityMedium},
		{ID: "f", Category: CategoryOptimization, Priority: PriorityLow},
		{ID: "g", Category: CategoryCulture, Priority: PriorityMedium},
	}
	plan := AssignPhases(recs)

	if len(plan.Phase1Foundation) != 1 || plan.Phase1Foundation[0].ID != "a" {
		t.Errorf("phase1 = %+v, want only a", plan.Phase1Foundation)
	}
	if len(plan.Phase2Process) != 2 {
		t.Errorf("phase2 = %+v, want c and d", plan.Phase2Process)
	}
	if len(plan.Phase3Optimization) != 2 {
		t.Errorf("phase3 = %+v, want f and g", plan.Phase3Optimization)
	}
}

func TestAssignPhasesBucketsDisjoint(t *testing.T) {
	recs := buildRecs(t, uniformResponses(1))
	plan := AssignPhases(recs)
	seen := make(map[string]int)
	for _, rec := range plan.Phase1Foundation {
		seen[rec.ID]++
	}
	for _, rec := range plan.Phase2Process {
		seen[rec.ID]++
	}
	for _, rec := range plan.Phase3Optimization {
		seen[rec.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("recommendation %s assigned to %d phases", id, n)
		}
	}
}

func TestCriticalPathOrdering(t *testing.T) {
	recs := []ContextualRecommendation{
		{ID: "opt", Category: CategoryOptimization, Priority: PriorityCritical},
		{ID: "proc", Category: CategoryProcess, Priority: PriorityCritical},
		{ID: "found", Category: CategoryFoundation, Priority: PriorityCritical},
		{ID: "skip", Category: CategoryFoundation, Priority: PriorityHigh},
		{ID: "cult", Category: CategoryCulture, Priority: PriorityCritical},
	}
	got := CriticalPath(recs)
	want := []string{"found", "proc", "opt", "cult"}
	if len(got) != len(want) {
		t.Fatalf("critical path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("critical path = %v, want %v", got, want)
		}
	}
}

func TestEstimateTimeline(t *testing.T) {
	plan := ImplementationPlan{
		Phase1Foundation:   make([]ContextualRecommendation, 2),
		Phase2Process:      make([]ContextualRecommendation, 1),
		Phase3Optimization: make([]ContextualRecommendation, 6),
	}
	tl := EstimateTimeline(plan)

	if tl.Phase1Weeks != 16 {
		t.Errorf("phase1 weeks = %d, want 16 (2 items x 8)", tl.Phase1Weeks)
	}
	if tl.Phase2Weeks != 16 {
		t.Errorf("phase2 weeks = %d, want floor 16", tl.Phase2Weeks)
	}
	if tl.Phase3Weeks != 24 {
		t.Errorf("phase3 weeks = %d, want 24 (6 items x 4)", tl.Phase3Weeks)
	}
	if tl.TotalWeeks != 56 || tl.TotalMonths != 14 {
		t.Errorf("total = %d weeks / %d months, want 56 / 14", tl.TotalWeeks, tl.TotalMonths)
	}
}

func TestEstimateTimelineEmptyPlanUsesFloors(t *testing.T) {
	tl := EstimateTimeline(ImplementationPlan{})
	if tl.TotalWeeks != 48 || tl.TotalMonths != 12 {
		t.Fatalf("empty plan total = %d weeks / %d months, want 48 / 12", tl.TotalWeeks, tl.TotalMonths)
	}
}

func TestEstimateInvestment(t *testing.T) {
	recs := []ContextualRecommendation{
		{Effort: analytics.Baixo},
		{Effort: analytics.Medio},
		{Effort: analytics.Alto},
	}
	inv := EstimateInvestment(recs)

	if inv.Low != 350000 || inv.High != 650000 {
		t.Errorf("investment = %d..%d, want 350000..650000", inv.Low, inv.High)
	}
	if inv.FormattedLow != "R$ 350k" || inv.FormattedHigh != "R$ 650k" {
		t.Errorf("formatted = %s..%s, want R$ 350k..R$ 650k", inv.FormattedLow, inv.FormattedHigh)
	}
}

func TestBuildRoadmapPhases(t *testing.T) {
	matrix := analytics.PrioritizationMatrix(map[string]int{
		"gov":      30,
		"delivery": 55,
		"benefits": 55,
		"people":   80,
		"tech":     60,
	})
	phases := BuildRoadmap(matrix)

	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].Timeframe != "0-90 dias" || phases[1].Timeframe != "90-180 dias" || phases[2].Timeframe != "180-365 dias" {
		t.Fatalf("unexpected timeframes: %s / %s / %s", phases[0].Timeframe, phases[1].Timeframe, phases[2].Timeframe)
	}
	for _, phase := range phases {
		if phase.Budget == "" || len(phase.Objectives) != 3 || len(phase.KPIs) != 3 || len(phase.Risks) != 3 {
			t.Errorf("phase %s missing fixed content: %+v", phase.Name, phase)
		}
	}

	if len(phases[0].Actions) > 8 {
		t.Errorf("phase1 has %d actions, cap is 8", len(phases[0].Actions))
	}
	for _, a := range phases[0].Actions {
		if !a.QuickWin {
			t.Errorf("phase1 action %q is not a quick win", a.Action)
		}
	}
	if len(phases[1].Actions) > 6 {
		t.Errorf("phase2 has %d actions, cap is 6", len(phases[1].Actions))
	}
	for _, a := range phases[1].Actions {
		if a.QuickWin {
			t.Errorf("phase2 action %q should not be a quick win", a.Action)
		}
	}
	if len(phases[2].Actions) != 3 {
		t.Errorf("phase3 has %d actions, want the 3 fixed ones", len(phases[2].Actions))
	}
}

func TestBucketBreakpoints(t *testing.T) {
	cases := []struct {
		value      int
		effortWant string
		impactWant string
	}{
		{1, analytics.Baixo, analytics.Baixo},
		{2, analytics.Baixo, analytics.Baixo},
		{3, analytics.Medio, analytics.Medio},
		{4, analytics.Alto, analytics.Alto},
		{5, analytics.Alto, analytics.Alto},
	}
	for _, tc := range cases {
		if got := effortBucket(tc.value); got != tc.effortWant {
			t.Errorf("effortBucket(%d) = %s, want %s", tc.value, got, tc.effortWant)
		}
		if got := impactBucket(tc.value); got != tc.impactWant {
			t.Errorf("impactBucket(%d) = %s, want %s", tc.value, got, tc.impactWant)
		}
	}
}

func TestCategoryForQuestion(t *testing.T) {
	cases := map[string]string{
		"gov1":    CategoryFoundation,
		"gov2":    CategoryProcess,
		"tech3":   CategoryProcess,
		"gov4":    CategoryOptimization,
		"people4": CategoryCulture,
	}
	for id, want := range cases {
		if got := categoryForQuestion(id); got != want {
			t.Errorf("categoryForQuestion(%s) = %s, want %s", id, got, want)
		}
	}
}
