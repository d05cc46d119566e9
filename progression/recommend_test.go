package progression

import (
	"strings"
	"testing"
)

func TestRecommendationOrdering(t *testing.T) {
	in := EvalInput{
		CurrentStatus: StatusUnlocked,
		SubScores:     SubScores{QuizScore: 50},
		Weights:       DefaultWeights(),
		RequiredScore: 70,
		Prerequisites: []PrerequisiteState{
			{ModuleID: 2, Title: "Module 2", Completed: false},
			{ModuleID: 3, Title: "Module 3", Completed: false},
		},
		Lessons: []LessonState{
			{LessonID: 4, Title: "Loops", Passed: false},
			{LessonID: 5, Title: "Functions", Passed: false},
		},
	}

	report := Evaluate(in)
	recs := report.Recommendations

	if len(recs) != 5 {
		t.Fatalf("got %d recommendations, want 5: %v", len(recs), recs)
	}

	// Prerequisites first, in course order
	if !strings.Contains(recs[0], "Module 2") {
		t.Errorf("recs[0] = %q, want the Module 2 prerequisite first", recs[0])
	}
	if !strings.Contains(recs[1], "Module 3") {
		t.Errorf("recs[1] = %q, want the Module 3 prerequisite second", recs[1])
	}

	// Score gap next: 70 - 15 = 55.0
	if recs[2] != "Improve your cumulative score by 55.0 points to reach the required 70.0." {
		t.Errorf("recs[2] = %q, want the score gap entry", recs[2])
	}

	// Failing lessons last, in lesson order
	if !strings.Contains(recs[3], "Loops") {
		t.Errorf("recs[3] = %q, want the Loops lesson", recs[3])
	}
	if !strings.Contains(recs[4], "Functions") {
		t.Errorf("recs[4] = %q, want the Functions lesson", recs[4])
	}
}

func TestRecommendationGapFormatting(t *testing.T) {
	in := EvalInput{
		SubScores:     SubScores{QuizScore: 55.5},
		Weights:       Weights{QuizScore: 1},
		RequiredScore: 60,
	}

	report := Evaluate(in)
	want := "Improve your cumulative score by 4.5 points to reach the required 60.0."
	if len(report.Recommendations) != 1 || report.Recommendations[0] != want {
		t.Errorf("Recommendations = %v, want [%q]", report.Recommendations, want)
	}
}

func TestRecommendationSkipsMetRequirements(t *testing.T) {
	in := EvalInput{
		SubScores:     SubScores{QuizScore: 100},
		Weights:       Weights{QuizScore: 1},
		RequiredScore: 50,
		Prerequisites: []PrerequisiteState{
			{ModuleID: 1, Title: "Module 1", Completed: true},
		},
		Lessons: []LessonState{
			{LessonID: 1, Title: "Intro", Passed: true},
		},
	}

	report := Evaluate(in)

	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "Module 1") || strings.Contains(rec, "Intro") {
			t.Errorf("recommendation for an already met requirement: %q", rec)
		}
	}
	if !report.Eligible {
		t.Fatalf("Eligible = false: %+v", report)
	}
}
