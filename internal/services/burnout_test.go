package services

import "testing"

func TestClassifyBurnoutRiskInsufficientData(t *testing.T) {
	for _, scores := range [][]float64{nil, {4}, {4, 3}} {
		assessment := ClassifyBurnoutRisk(scores)
		if assessment.RiskTier != BurnoutInsufficientData {
			t.Fatalf("expected insufficient-data tier for %v, got %s", scores, assessment.RiskTier)
		}
		if len(assessment.Recommendations) != 0 {
			t.Fatalf("expected empty recommendations, got %v", assessment.Recommendations)
		}
		if assessment.Level != 0 {
			t.Fatalf("expected level 0, got %d", assessment.Level)
		}
	}
}

func TestClassifyBurnoutRiskReferenceScenario(t *testing.T) {
	// average ~3.14, last-3 average ~1.67, decline ~1.48: decline stays
	// under 1.5 but the average sits below 4, so the tier is moderate.
	assessment := ClassifyBurnoutRisk([]float64{5, 4, 5, 3, 2, 2, 1})

	if assessment.RiskTier != BurnoutModerate {
		t.Fatalf("expected moderate tier, got %s", assessment.RiskTier)
	}
	if assessment.Level != 2 {
		t.Fatalf("expected level 2, got %d", assessment.Level)
	}
	if assessment.AverageScore != 3.14 {
		t.Fatalf("expected average 3.14, got %f", assessment.AverageScore)
	}
	if assessment.RecentScore != 1.67 {
		t.Fatalf("expected recent average 1.67, got %f", assessment.RecentScore)
	}
}

func TestClassifyBurnoutRiskHighTier(t *testing.T) {
	// Average below 3 alone is enough.
	lowAverage := ClassifyBurnoutRisk([]float64{2, 3, 3, 3, 3})
	if lowAverage.RiskTier != BurnoutHigh {
		t.Fatalf("expected high tier for low average, got %s", lowAverage.RiskTier)
	}

	// Steep decline triggers high even with a decent average.
	steepDecline := ClassifyBurnoutRisk([]float64{5, 5, 5, 5, 5, 5, 1, 1, 1})
	if steepDecline.RiskTier != BurnoutHigh {
		t.Fatalf("expected high tier for steep decline, got %s", steepDecline.RiskTier)
	}
}

func TestClassifyBurnoutRiskBoundaries(t *testing.T) {
	// Average exactly 3.0 is not "< 3": falls through to moderate.
	atThree := ClassifyBurnoutRisk([]float64{3, 3, 3})
	if atThree.RiskTier != BurnoutModerate {
		t.Fatalf("expected moderate tier at average 3.0, got %s", atThree.RiskTier)
	}

	// Decline exactly 1.5 is not "> 1.5": the average of 3.5 lands moderate.
	atDecline := ClassifyBurnoutRisk([]float64{5, 5, 5, 2, 2, 2})
	if atDecline.RiskTier != BurnoutModerate {
		t.Fatalf("expected moderate tier at decline 1.5, got %s", atDecline.RiskTier)
	}

	// A perfect window with zero decline fails every threshold.
	atFive := ClassifyBurnoutRisk([]float64{5, 5, 5, 5})
	if atFive.RiskTier != BurnoutLow {
		t.Fatalf("expected low tier for constant fives, got %s", atFive.RiskTier)
	}

	// Average exactly 4.0 with no decline is not "< 4": mild (average < 5).
	atFour := ClassifyBurnoutRisk([]float64{4, 4, 4, 4})
	if atFour.RiskTier != BurnoutMild {
		t.Fatalf("expected mild tier at average 4.0, got %s", atFour.RiskTier)
	}
}

func TestClassifyBurnoutRiskRecommendationsScaleWithTier(t *testing.T) {
	high := ClassifyBurnoutRisk([]float64{1, 1, 1})
	if len(high.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations for high tier, got %d", len(high.Recommendations))
	}

	mild := ClassifyBurnoutRisk([]float64{4.5, 4.5, 4.5})
	if mild.RiskTier != BurnoutMild {
		t.Fatalf("expected mild tier, got %s", mild.RiskTier)
	}
	for _, recommendation := range mild.Recommendations {
		if recommendation == "" {
			t.Fatal("expected non-empty mild recommendations")
		}
	}
	if len(mild.Recommendations) >= len(high.Recommendations) {
		t.Fatalf("expected mild to carry fewer recommendations than high, got %d vs %d",
			len(mild.Recommendations), len(high.Recommendations))
	}
}

func TestBuildGoalAdjustmentPlan(t *testing.T) {
	high := BuildGoalAdjustmentPlan(BurnoutAssessment{RiskTier: BurnoutHigh, Level: 3})
	if len(high.Adjustments) != 3 {
		t.Fatalf("expected 3 adjustments for high tier, got %d", len(high.Adjustments))
	}
	if high.Adjustments[0].Type != AdjustmentTaskReduction || high.Adjustments[0].Severity != 50 {
		t.Fatalf("expected 50%% task reduction first, got %#v", high.Adjustments[0])
	}
	if high.Adjustments[1].Type != AdjustmentMindfulness || high.Adjustments[1].Duration != 10 {
		t.Fatalf("expected 10-minute mindfulness, got %#v", high.Adjustments[1])
	}
	if high.Adjustments[2].Type != AdjustmentTimeline || high.Adjustments[2].Days != 10 {
		t.Fatalf("expected 10-day timeline extension, got %#v", high.Adjustments[2])
	}

	moderate := BuildGoalAdjustmentPlan(BurnoutAssessment{RiskTier: BurnoutModerate, Level: 2})
	if len(moderate.Adjustments) != 3 {
		t.Fatalf("expected 3 adjustments for moderate tier, got %d", len(moderate.Adjustments))
	}
	if moderate.Adjustments[0].Severity != 25 || moderate.Adjustments[1].Duration != 5 || moderate.Adjustments[2].Days != 5 {
		t.Fatalf("expected 25%%/5min/5days for moderate tier, got %#v", moderate.Adjustments)
	}

	mild := BuildGoalAdjustmentPlan(BurnoutAssessment{RiskTier: BurnoutMild, Level: 1})
	if len(mild.Adjustments) != 1 || mild.Adjustments[0].Type != AdjustmentMindfulness {
		t.Fatalf("expected a single mindfulness directive for mild tier, got %#v", mild.Adjustments)
	}

	low := BuildGoalAdjustmentPlan(BurnoutAssessment{RiskTier: BurnoutLow})
	if len(low.Adjustments) != 0 || low.Message == "" {
		t.Fatalf("expected no directives and an encouraging message for low tier, got %#v", low)
	}

	missing := BuildGoalAdjustmentPlan(BurnoutAssessment{RiskTier: BurnoutInsufficientData})
	if len(missing.Adjustments) != 0 || missing.Message == "" {
		t.Fatalf("expected no directives for insufficient data, got %#v", missing)
	}
}
