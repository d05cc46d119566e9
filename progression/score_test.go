package progression

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCumulativeScoreWeighted(t *testing.T) {
	s := SubScores{
		CourseContribution:   100,
		QuizScore:            80,
		AssignmentScore:      70,
		FinalAssessmentScore: 60,
	}
	w := DefaultWeights()

	got := CumulativeScore(s, w)
	if !almostEqual(got, 73) {
		t.Fatalf("CumulativeScore = %v, want 73", got)
	}
}

func TestCumulativeScoreClampsSubScores(t *testing.T) {
	s := SubScores{
		CourseContribution:   -50,
		QuizScore:            150,
		AssignmentScore:      0,
		FinalAssessmentScore: 0,
	}
	w := Weights{CourseContribution: 0.5, QuizScore: 0.5}

	// -50 clamps to 0, 150 clamps to 100
	got := CumulativeScore(s, w)
	if !almostEqual(got, 50) {
		t.Errorf("CumulativeScore = %v, want 50", got)
	}
}

func TestCumulativeScoreResultClamped(t *testing.T) {
	s := SubScores{
		CourseContribution:   100,
		QuizScore:            100,
		AssignmentScore:      100,
		FinalAssessmentScore: 100,
	}
	w := Weights{
		CourseContribution:   1,
		QuizScore:            1,
		AssignmentScore:      1,
		FinalAssessmentScore: 1,
	}

	got := CumulativeScore(s, w)
	if !almostEqual(got, 100) {
		t.Errorf("CumulativeScore = %v, want 100 after clamping", got)
	}
}

func TestCumulativeScoreNoRenormalization(t *testing.T) {
	// Weights that sum to 0.5 are used as supplied
	s := SubScores{
		CourseContribution:   100,
		QuizScore:            100,
		AssignmentScore:      100,
		FinalAssessmentScore: 100,
	}
	w := Weights{
		CourseContribution:   0.2,
		QuizScore:            0.1,
		AssignmentScore:      0.1,
		FinalAssessmentScore: 0.1,
	}

	got := CumulativeScore(s, w)
	if !almostEqual(got, 50) {
		t.Errorf("CumulativeScore = %v, want 50 (weights must not be renormalized)", got)
	}
}

func TestCumulativeScoreMonotonic(t *testing.T) {
	w := DefaultWeights()
	base := SubScores{
		CourseContribution:   40,
		QuizScore:            50,
		AssignmentScore:      60,
		FinalAssessmentScore: 70,
	}
	baseScore := CumulativeScore(base, w)

	bumps := []SubScores{
		{CourseContribution: 50, QuizScore: 50, AssignmentScore: 60, FinalAssessmentScore: 70},
		{CourseContribution: 40, QuizScore: 60, AssignmentScore: 60, FinalAssessmentScore: 70},
		{CourseContribution: 40, QuizScore: 50, AssignmentScore: 70, FinalAssessmentScore: 70},
		{CourseContribution: 40, QuizScore: 50, AssignmentScore: 60, FinalAssessmentScore: 80},
	}
	for i, s := range bumps {
		if got := CumulativeScore(s, w); got < baseScore {
			t.Errorf("case %d: raising one sub-score lowered the total: %v < %v", i, got, baseScore)
		}
	}
}

func TestCumulativeScoreZeroInputs(t *testing.T) {
	got := CumulativeScore(SubScores{}, DefaultWeights())
	if got != 0 {
		t.Errorf("CumulativeScore of zero sub-scores = %v, want 0", got)
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.CourseContribution + w.QuizScore + w.AssignmentScore + w.FinalAssessmentScore
	if !almostEqual(sum, 1) {
		t.Errorf("default weights sum = %v, want 1", sum)
	}
}

func TestBreakdownFor(t *testing.T) {
	s := SubScores{
		CourseContribution:   100,
		QuizScore:            80,
		AssignmentScore:      70,
		FinalAssessmentScore: 60,
	}
	w := DefaultWeights()

	b := BreakdownFor(s, w)

	if !almostEqual(b.TotalScore, 73) {
		t.Errorf("TotalScore = %v, want 73", b.TotalScore)
	}
	if !almostEqual(b.Breakdown.CourseContribution, 10) {
		t.Errorf("CourseContribution contribution = %v, want 10", b.Breakdown.CourseContribution)
	}
	if !almostEqual(b.Breakdown.QuizScore, 24) {
		t.Errorf("QuizScore contribution = %v, want 24", b.Breakdown.QuizScore)
	}
	if !almostEqual(b.Breakdown.AssignmentScore, 21) {
		t.Errorf("AssignmentScore contribution = %v, want 21", b.Breakdown.AssignmentScore)
	}
	if !almostEqual(b.Breakdown.FinalAssessmentScore, 18) {
		t.Errorf("FinalAssessmentScore contribution = %v, want 18", b.Breakdown.FinalAssessmentScore)
	}
	if b.WeightsUsed != w {
		t.Errorf("WeightsUsed = %+v, want %+v", b.WeightsUsed, w)
	}

	// Total must equal the sum of the contributions
	sum := b.Breakdown.CourseContribution + b.Breakdown.QuizScore +
		b.Breakdown.AssignmentScore + b.Breakdown.FinalAssessmentScore
	if !almostEqual(sum, b.TotalScore) {
		t.Errorf("contribution sum = %v, total = %v", sum, b.TotalScore)
	}
}
