package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"osrl-backend/internal/catalog"
)

func uniformResponses(value int) map[string]int {
	out := make(map[string]int, len(catalog.Questions))
	for _, q := range catalog.Questions {
		out[q.ID] = value
	}
	return out
}

func TestAnalyzeResponsesCoversCatalog(t *testing.T) {
	insights := AnalyzeResponses(uniformResponses(3))
	if len(insights) != len(catalog.Questions) {
		t.Fatalf("expected %d insights, got %d", len(catalog.Questions), len(insights))
	}
	seen := make(map[string]bool, len(insights))
	for _, insight := range insights {
		if seen[insight.QuestionID] {
			t.Fatalf("duplicate insight for %s", insight.QuestionID)
		}
		seen[insight.QuestionID] = true
	}
	for _, q := range catalog.Questions {
		if !seen[q.ID] {
			t.Fatalf("missing insight for %s", q.ID)
		}
	}
}

func TestAnalyzeResponsesDefaultsUnanswered(t *testing.T) {
	insights := AnalyzeResponses(map[string]int{"gov1": 4})
	for _, insight := range insights {
		if insight.QuestionID == "gov1" {
			if insight.Response != 4 {
				t.Fatalf("expected answered response 4, got %d", insight.Response)
			}
			continue
		}
		if insight.Response != 1 {
			t.Fatalf("expected unanswered %s to default to 1, got %d", insight.QuestionID, insight.Response)
		}
		if insight.Status != StatusCritical {
			t.Fatalf("expected unanswered %s to be critical, got %s", insight.QuestionID, insight.Status)
		}
	}
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		response int
		want     string
	}{
		{1, StatusCritical},
		{2, StatusWarning},
		{3, StatusGood},
		{4, StatusExcellent},
		{5, StatusExcellent},
	}
	for _, tc := range cases {
		if got := classifyStatus(tc.response); got != tc.want {
			t.Fatalf("response %d: expected %s, got %s", tc.response, tc.want, got)
		}
	}
}

func TestClassifyUrgencyFoundational(t *testing.T) {
	if got := classifyUrgency("gov1", 2); got != LevelHigh {
		t.Fatalf("foundational question at 2 must be high urgency, got %s", got)
	}
	if got := classifyUrgency("gov2", 2); got != LevelMedium {
		t.Fatalf("non-foundational question at 2 must be medium urgency, got %s", got)
	}
	if got := classifyUrgency("gov1", 3); got != LevelLow {
		t.Fatalf("foundational question at 3 must fall back to low, got %s", got)
	}
}

func TestClassifyImpactByReach(t *testing.T) {
	// gov1 affects three questions, gov3 two, gov4 none.
	if got := classifyImpact("gov1", 2); got != LevelHigh {
		t.Fatalf("wide reach at 2 must be high impact, got %s", got)
	}
	if got := classifyImpact("gov3", 2); got != LevelMedium {
		t.Fatalf("two-question reach at 2 must be medium impact, got %s", got)
	}
	if got := classifyImpact("gov4", 2); got != LevelMedium {
		t.Fatalf("no reach at 2 must fall back to medium, got %s", got)
	}
	if got := classifyImpact("gov4", 1); got != LevelHigh {
		t.Fatalf("no reach at 1 must fall back to high, got %s", got)
	}
	if got := classifyImpact("gov1", 4); got != LevelLow {
		t.Fatalf("strong response must be low impact regardless of reach, got %s", got)
	}
}

func TestInsightDependencies(t *testing.T) {
	responses := uniformResponses(3)
	responses["gov1"] = 5
	responses["gov2"] = 1

	insights := AnalyzeResponses(responses)
	var gov2 QuestionInsight
	for _, insight := range insights {
		if insight.QuestionID == "gov2" {
			gov2 = insight
		}
	}
	if diff := cmp.Diff([]string{"gov1"}, gov2.DependsOn); diff != "" {
		t.Fatalf("gov2 dependsOn mismatch (-want +got):\n%s", diff)
	}
	if gov2.Status != StatusCritical {
		t.Fatalf("expected gov2 critical, got %s", gov2.Status)
	}
	if len(gov2.SpecificIssues) == 0 || len(gov2.SpecificRecommendations) == 0 {
		t.Fatalf("expected specific issues and recommendations for low response")
	}
}

func TestIssuesFallbackNeverEmpty(t *testing.T) {
	for _, q := range catalog.Questions {
		issues, recs := issuesFor(q)
		if len(issues) == 0 || len(recs) == 0 {
			t.Fatalf("question %s: issue lookup must never be empty", q.ID)
		}
	}
}
