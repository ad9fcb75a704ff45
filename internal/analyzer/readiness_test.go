package analyzer

import "testing"

func TestAssessReadinessUniform(t *testing.T) {
	assessment := AssessReadiness(uniformResponses(3))
	if assessment.FoundationScore != 3 || assessment.ExecutionScore != 3 || assessment.OptimizationScore != 3 {
		t.Fatalf("expected all tier means at 3, got %+v", assessment)
	}
	if assessment.Stage != StageExecution {
		t.Fatalf("expected execution stage, got %s", assessment.Stage)
	}
	if len(assessment.MissingFoundations) != 0 {
		t.Fatalf("expected no missing foundations, got %v", assessment.MissingFoundations)
	}
}

func TestAssessReadinessOptimizationTierExcludesTech4(t *testing.T) {
	responses := uniformResponses(3)
	responses["tech4"] = 5

	before := AssessReadiness(uniformResponses(3))
	after := AssessReadiness(responses)
	if before.OptimizationScore != after.OptimizationScore {
		t.Fatalf("tech4 must not participate in the optimization tier mean")
	}
}

func TestAssessReadinessMissingFoundations(t *testing.T) {
	responses := uniformResponses(3)
	responses["gov1"] = 1
	responses["people1"] = 2

	assessment := AssessReadiness(responses)
	if len(assessment.MissingFoundations) != 2 {
		t.Fatalf("expected 2 missing foundations, got %v", assessment.MissingFoundations)
	}
}

func TestAssessReadinessPrematureAdvanced(t *testing.T) {
	responses := uniformResponses(3)
	responses["gov1"] = 2
	responses["gov4"] = 5

	assessment := AssessReadiness(responses)
	if len(assessment.PrematureAdvanced) != 1 || assessment.PrematureAdvanced[0] != "gov4" {
		t.Fatalf("expected gov4 flagged as premature, got %v", assessment.PrematureAdvanced)
	}
}

func TestAssessReadinessStageFoundation(t *testing.T) {
	assessment := AssessReadiness(uniformResponses(1))
	if assessment.Stage != StageFoundation {
		t.Fatalf("expected foundation stage, got %s", assessment.Stage)
	}
	if len(assessment.MissingFoundations) != len(foundationTier) {
		t.Fatalf("expected every foundation flagged, got %v", assessment.MissingFoundations)
	}
}
