package progression

// PrerequisiteState is one prerequisite module resolved against the student's
// progress, in course order.
type PrerequisiteState struct {
	ModuleID  uint   `json:"module_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// LessonState is one lesson requirement resolved for the student, in lesson order.
type LessonState struct {
	LessonID uint   `json:"lesson_id"`
	Title    string `json:"title"`
	Passed   bool   `json:"passed"`
}

// PrerequisiteSummary summarizes prerequisite completion for a report.
type PrerequisiteSummary struct {
	AllCompleted   bool     `json:"all_completed"`
	CompletedCount int      `json:"completed_count"`
	TotalCount     int      `json:"total_count"`
	FailedModules  []string `json:"failed_modules"`
}

// LessonSummary summarizes lesson completion for a report.
type LessonSummary struct {
	AllLessonsPassed bool     `json:"all_lessons_passed"`
	PassedCount      int      `json:"passed_count"`
	TotalCount       int      `json:"total_count"`
	FailedLessons    []string `json:"failed_lessons"`
}

// Report is the full eligibility verdict returned to callers. It is derived on
// every evaluation and never stored as-is.
type Report struct {
	Eligible           bool                `json:"eligible"`
	CanPreview         bool                `json:"can_preview"`
	CurrentStatus      string              `json:"current_status"`
	TotalScore         float64             `json:"total_score"`
	RequiredScore      float64             `json:"required_score"`
	Prerequisites      PrerequisiteSummary `json:"prerequisites"`
	LessonRequirements LessonSummary       `json:"lesson_requirements"`
	ScoringBreakdown   ScoringBreakdown    `json:"scoring_breakdown"`
	Recommendations    []string            `json:"recommendations"`
}
