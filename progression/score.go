package progression

// SubScores holds the four graded components of a module, each on a 0-100 scale.
// Sources that have not been attempted yet legitimately report 0.
type SubScores struct {
	CourseContribution   float64 `json:"course_contribution"`
	QuizScore            float64 `json:"quiz_score"`
	AssignmentScore      float64 `json:"assignment_score"`
	FinalAssessmentScore float64 `json:"final_assessment_score"`
}

// Weights holds the per-component weights for the cumulative score.
// The configuration owner is responsible for making them sum to 1.0; this
// package uses them as supplied and never renormalizes.
type Weights struct {
	CourseContribution   float64 `json:"course_contribution"`
	QuizScore            float64 `json:"quiz_score"`
	AssignmentScore      float64 `json:"assignment_score"`
	FinalAssessmentScore float64 `json:"final_assessment_score"`
}

// DefaultWeights are applied when a course carries no scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		CourseContribution:   0.1,
		QuizScore:            0.3,
		AssignmentScore:      0.3,
		FinalAssessmentScore: 0.3,
	}
}

// ScoringBreakdown reports the weighted contribution of each component.
type ScoringBreakdown struct {
	TotalScore  float64   `json:"total_score"`
	Breakdown   SubScores `json:"breakdown"`
	WeightsUsed Weights   `json:"weights_used"`
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CumulativeScore computes the weighted aggregate of the four sub-scores.
// Out-of-range sub-scores are clamped into [0,100] rather than rejected, and
// the result itself is clamped to [0,100].
func CumulativeScore(s SubScores, w Weights) float64 {
	total := clamp(s.CourseContribution)*w.CourseContribution +
		clamp(s.QuizScore)*w.QuizScore +
		clamp(s.AssignmentScore)*w.AssignmentScore +
		clamp(s.FinalAssessmentScore)*w.FinalAssessmentScore
	return clamp(total)
}

// BreakdownFor returns the per-component weighted contributions alongside the
// total, for display in eligibility reports.
func BreakdownFor(s SubScores, w Weights) ScoringBreakdown {
	contrib := SubScores{
		CourseContribution:   clamp(s.CourseContribution) * w.CourseContribution,
		QuizScore:            clamp(s.QuizScore) * w.QuizScore,
		AssignmentScore:      clamp(s.AssignmentScore) * w.AssignmentScore,
		FinalAssessmentScore: clamp(s.FinalAssessmentScore) * w.FinalAssessmentScore,
	}
	return ScoringBreakdown{
		TotalScore:  CumulativeScore(s, w),
		Breakdown:   contrib,
		WeightsUsed: w,
	}
}
