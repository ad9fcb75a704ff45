package analyzer

import (
	"testing"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/scoring"
)

func TestDetectPatternsAllCritical(t *testing.T) {
	responses := uniformResponses(1)
	insights := AnalyzeResponses(responses)
	patterns := DetectPatterns(insights, scoring.PillarAverages(responses))

	cascades := 0
	for _, p := range patterns {
		if p.Type == PatternCascadeRisk {
			cascades++
		}
	}
	if cascades != len(catalog.Pillars) {
		t.Fatalf("expected one cascade risk per pillar, got %d", cascades)
	}
}

func TestDetectPatternsGovernanceDeliveryInconsistency(t *testing.T) {
	responses := uniformResponses(3)
	for _, id := range []string{"gov1", "gov2", "gov3", "gov4"} {
		responses[id] = 5
	}
	for _, id := range []string{"delivery1", "delivery2", "delivery3", "delivery4"} {
		responses[id] = 2
	}
	insights := AnalyzeResponses(responses)
	patterns := DetectPatterns(insights, scoring.PillarAverages(responses))

	found := false
	for _, p := range patterns {
		if p.Type == PatternInconsistency && p.Severity == LevelHigh {
			found = true
			want := []string{"gov1", "gov2", "delivery1", "delivery2"}
			if len(p.Questions) != len(want) {
				t.Fatalf("expected %d referenced questions, got %d", len(want), len(p.Questions))
			}
		}
	}
	if !found {
		t.Fatalf("expected governance/delivery inconsistency to fire")
	}
}

func TestDetectPatternsBenefitsNotMeasured(t *testing.T) {
	responses := uniformResponses(3)
	responses["benefits1"] = 5
	responses["benefits2"] = 1
	insights := AnalyzeResponses(responses)
	patterns := DetectPatterns(insights, scoring.PillarAverages(responses))

	for _, p := range patterns {
		if p.Type == PatternInconsistency {
			if p.Questions[0] != "benefits1" || p.Questions[1] != "benefits2" {
				t.Fatalf("expected benefits pair, got %v", p.Questions)
			}
			return
		}
	}
	t.Fatalf("expected benefits-not-measured inconsistency to fire")
}

func TestDetectPatternsBottleneckAndEnabler(t *testing.T) {
	responses := uniformResponses(3)
	responses["gov1"] = 1 // affects 3 questions -> bottleneck
	responses["tech1"] = 5 // affects 3 questions -> enabler
	insights := AnalyzeResponses(responses)
	patterns := DetectPatterns(insights, scoring.PillarAverages(responses))

	var bottleneck, enabler *ResponsePattern
	for i := range patterns {
		switch patterns[i].Type {
		case PatternBottleneck:
			bottleneck = &patterns[i]
		case PatternEnabler:
			enabler = &patterns[i]
		}
	}
	if bottleneck == nil {
		t.Fatalf("expected a bottleneck pattern")
	}
	if bottleneck.Questions[0] != "gov1" || len(bottleneck.Questions) != 4 {
		t.Fatalf("bottleneck must list the question and its affected set, got %v", bottleneck.Questions)
	}
	if enabler == nil {
		t.Fatalf("expected an enabler pattern")
	}
	if enabler.Questions[0] != "tech1" {
		t.Fatalf("enabler must lead with its question id, got %v", enabler.Questions)
	}
}

func TestDetectPatternsOrdering(t *testing.T) {
	responses := uniformResponses(1)
	responses["benefits1"] = 4
	insights := AnalyzeResponses(responses)
	patterns := DetectPatterns(insights, scoring.PillarAverages(responses))

	rank := map[string]int{
		PatternInconsistency: 0,
		PatternBottleneck:    1,
		PatternEnabler:       2,
		PatternCascadeRisk:   3,
	}
	prev := 0
	for _, p := range patterns {
		if rank[p.Type] < prev {
			t.Fatalf("pattern types out of order: %s after rank %d", p.Type, prev)
		}
		prev = rank[p.Type]
	}
}
