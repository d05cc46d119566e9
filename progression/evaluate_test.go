package progression

import "testing"

func passingInput() EvalInput {
	return EvalInput{
		CurrentStatus: StatusInProgress,
		SubScores: SubScores{
			CourseContribution:   100,
			QuizScore:            80,
			AssignmentScore:      70,
			FinalAssessmentScore: 60,
		},
		Weights:       DefaultWeights(),
		RequiredScore: 70,
		Prerequisites: []PrerequisiteState{
			{ModuleID: 1, Title: "Module 1", Completed: true},
		},
		Lessons: []LessonState{
			{LessonID: 1, Title: "Intro", Passed: true},
			{LessonID: 2, Title: "Basics", Passed: true},
		},
	}
}

func TestEvaluateAllRequirementsMet(t *testing.T) {
	report := Evaluate(passingInput())

	if !report.Eligible {
		t.Fatalf("Eligible = false, want true: %+v", report)
	}
	if report.CanPreview {
		t.Errorf("CanPreview = true, must never hold together with Eligible")
	}
	if !almostEqual(report.TotalScore, 73) {
		t.Errorf("TotalScore = %v, want 73", report.TotalScore)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v, want exactly the confirmation entry", report.Recommendations)
	}
	if report.Recommendations[0] != "All requirements met. You are ready to unlock the next module." {
		t.Errorf("unexpected confirmation message: %q", report.Recommendations[0])
	}
}

func TestEvaluateInclusiveThreshold(t *testing.T) {
	in := passingInput()
	in.RequiredScore = 73

	report := Evaluate(in)
	if !report.Eligible {
		t.Errorf("Eligible = false at score == required, threshold must be inclusive")
	}
}

func TestEvaluateScoreBelowThreshold(t *testing.T) {
	in := EvalInput{
		CurrentStatus: StatusUnlocked,
		SubScores:     SubScores{},
		Weights:       DefaultWeights(),
		RequiredScore: 70,
	}

	report := Evaluate(in)

	if report.Eligible {
		t.Fatalf("Eligible = true with zero scores")
	}
	if !report.CanPreview {
		t.Errorf("CanPreview = false, want true when prerequisites are met but the score is not")
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v, want one score-gap entry", report.Recommendations)
	}
	want := "Improve your cumulative score by 70.0 points to reach the required 70.0."
	if report.Recommendations[0] != want {
		t.Errorf("Recommendations[0] = %q, want %q", report.Recommendations[0], want)
	}
}

func TestEvaluatePrerequisiteIncomplete(t *testing.T) {
	in := passingInput()
	in.Prerequisites = append(in.Prerequisites, PrerequisiteState{ModuleID: 2, Title: "Module 2", Completed: false})

	report := Evaluate(in)

	if report.Eligible {
		t.Fatalf("Eligible = true with an incomplete prerequisite")
	}
	if report.CanPreview {
		t.Errorf("CanPreview = true, want false when prerequisites are not met")
	}
	if report.Prerequisites.AllCompleted {
		t.Errorf("AllCompleted = true, want false")
	}
	if report.Prerequisites.CompletedCount != 1 || report.Prerequisites.TotalCount != 2 {
		t.Errorf("prerequisite counts = %d/%d, want 1/2",
			report.Prerequisites.CompletedCount, report.Prerequisites.TotalCount)
	}
	if len(report.Prerequisites.FailedModules) != 1 || report.Prerequisites.FailedModules[0] != "Module 2" {
		t.Errorf("FailedModules = %v, want [Module 2]", report.Prerequisites.FailedModules)
	}

	want := "Complete prerequisite module \"Module 2\" before attempting this module."
	if len(report.Recommendations) == 0 || report.Recommendations[0] != want {
		t.Errorf("Recommendations[0] = %v, want %q", report.Recommendations, want)
	}
}

func TestEvaluateFailingLesson(t *testing.T) {
	in := passingInput()
	in.Lessons[1].Passed = false

	report := Evaluate(in)

	if report.Eligible {
		t.Fatalf("Eligible = true with a failing lesson")
	}
	if !report.CanPreview {
		t.Errorf("CanPreview = false, want true: prerequisites met, lesson bar not")
	}
	if report.LessonRequirements.AllLessonsPassed {
		t.Errorf("AllLessonsPassed = true, want false")
	}
	if report.LessonRequirements.PassedCount != 1 || report.LessonRequirements.TotalCount != 2 {
		t.Errorf("lesson counts = %d/%d, want 1/2",
			report.LessonRequirements.PassedCount, report.LessonRequirements.TotalCount)
	}

	want := "Pass lesson \"Basics\" to meet the module's lesson requirements."
	found := false
	for _, rec := range report.Recommendations {
		if rec == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Recommendations = %v, missing %q", report.Recommendations, want)
	}
}

func TestEvaluateVacuousRequirements(t *testing.T) {
	// No prerequisites and no lessons: both gates pass vacuously
	in := EvalInput{
		CurrentStatus: StatusUnlocked,
		SubScores:     SubScores{QuizScore: 100, AssignmentScore: 100, FinalAssessmentScore: 100, CourseContribution: 100},
		Weights:       DefaultWeights(),
		RequiredScore: 70,
	}

	report := Evaluate(in)

	if !report.Prerequisites.AllCompleted {
		t.Errorf("AllCompleted = false with no prerequisites, want vacuous true")
	}
	if !report.LessonRequirements.AllLessonsPassed {
		t.Errorf("AllLessonsPassed = false with no lessons, want vacuous true")
	}
	if !report.Eligible {
		t.Errorf("Eligible = false, want true")
	}
	if report.Prerequisites.FailedModules == nil {
		t.Errorf("FailedModules must be an empty slice, not nil")
	}
}

func TestEvaluateRecommendationsNeverEmpty(t *testing.T) {
	cases := []EvalInput{
		passingInput(),
		{Weights: DefaultWeights(), RequiredScore: 70},
		{
			Weights:       DefaultWeights(),
			RequiredScore: 0,
			Prerequisites: []PrerequisiteState{{ModuleID: 9, Title: "Module 9", Completed: false}},
		},
	}

	for i, in := range cases {
		if recs := Evaluate(in).Recommendations; len(recs) == 0 {
			t.Errorf("case %d: empty recommendations", i)
		}
	}
}

func TestEvaluatePreviewNeverWithEligible(t *testing.T) {
	inputs := []EvalInput{
		passingInput(),
		{Weights: DefaultWeights(), RequiredScore: 70},
		{Weights: DefaultWeights(), RequiredScore: 0},
		{
			Weights:       DefaultWeights(),
			RequiredScore: 50,
			Prerequisites: []PrerequisiteState{{ModuleID: 3, Title: "Module 3", Completed: false}},
		},
	}

	for i, in := range inputs {
		report := Evaluate(in)
		if report.Eligible && report.CanPreview {
			t.Errorf("case %d: Eligible and CanPreview both true", i)
		}
	}
}

func TestNextStatus(t *testing.T) {
	cases := []struct {
		current      string
		eligible     bool
		attemptsLeft int
		want         string
	}{
		{StatusInProgress, true, 2, StatusCompleted},
		{StatusUnlocked, true, 0, StatusCompleted},
		{StatusInProgress, false, 1, StatusInProgress},
		{StatusInProgress, false, 0, StatusFailed},
		{StatusUnlocked, false, 0, StatusFailed},
		{StatusCompleted, false, 0, StatusCompleted},
		{StatusFailed, true, 3, StatusFailed},
		{StatusLocked, true, 3, StatusLocked},
	}

	for _, tc := range cases {
		got := NextStatus(tc.current, tc.eligible, tc.attemptsLeft)
		if got != tc.want {
			t.Errorf("NextStatus(%s, %v, %d) = %s, want %s",
				tc.current, tc.eligible, tc.attemptsLeft, got, tc.want)
		}
	}
}

func TestCanStartAndIsTerminal(t *testing.T) {
	if CanStart(StatusLocked) || CanStart(StatusCompleted) || CanStart(StatusFailed) {
		t.Errorf("CanStart must be false for LOCKED, COMPLETED, FAILED")
	}
	if !CanStart(StatusUnlocked) || !CanStart(StatusInProgress) {
		t.Errorf("CanStart must be true for UNLOCKED and IN_PROGRESS")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusFailed) {
		t.Errorf("COMPLETED and FAILED are terminal")
	}
	if IsTerminal(StatusInProgress) || IsTerminal(StatusUnlocked) || IsTerminal(StatusLocked) {
		t.Errorf("non-terminal status reported as terminal")
	}
}
