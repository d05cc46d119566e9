// Package progression holds the module unlock scoring and eligibility rules.
// Everything here is a pure function over already-fetched data; controllers
// assemble the inputs and persist whatever they need from the result.
package progression

// EvalInput carries everything needed for one eligibility evaluation.
type EvalInput struct {
	CurrentStatus string
	SubScores     SubScores
	Weights       Weights
	RequiredScore float64
	Prerequisites []PrerequisiteState
	Lessons       []LessonState
}

// Evaluate renders the unlock eligibility verdict for one (student, module)
// pair. The rules, in order:
//
//	prerequisitesMet = every prerequisite module is COMPLETED (vacuously true when none)
//	lessonsMet       = every lesson requirement is passed (vacuously true when none)
//	scoreMet         = cumulative score >= required score (inclusive)
//	eligible         = prerequisitesMet && lessonsMet && scoreMet
//	canPreview       = prerequisitesMet && !eligible
//
// canPreview grants a read-only tier: prerequisites cleared but the lesson or
// score bar not yet met. It is never true together with eligible.
func Evaluate(in EvalInput) Report {
	prereqs := summarizePrerequisites(in.Prerequisites)
	lessons := summarizeLessons(in.Lessons)
	breakdown := BreakdownFor(in.SubScores, in.Weights)

	scoreMet := breakdown.TotalScore >= in.RequiredScore
	eligible := prereqs.AllCompleted && lessons.AllLessonsPassed && scoreMet
	canPreview := prereqs.AllCompleted && !eligible

	return Report{
		Eligible:           eligible,
		CanPreview:         canPreview,
		CurrentStatus:      in.CurrentStatus,
		TotalScore:         breakdown.TotalScore,
		RequiredScore:      in.RequiredScore,
		Prerequisites:      prereqs,
		LessonRequirements: lessons,
		ScoringBreakdown:   breakdown,
		Recommendations:    Recommendations(in, prereqs, lessons, breakdown.TotalScore, eligible, scoreMet),
	}
}

func summarizePrerequisites(prereqs []PrerequisiteState) PrerequisiteSummary {
	summary := PrerequisiteSummary{
		AllCompleted:  true,
		TotalCount:    len(prereqs),
		FailedModules: []string{},
	}
	for _, p := range prereqs {
		if p.Completed {
			summary.CompletedCount++
		} else {
			summary.AllCompleted = false
			summary.FailedModules = append(summary.FailedModules, p.Title)
		}
	}
	return summary
}

func summarizeLessons(lessons []LessonState) LessonSummary {
	summary := LessonSummary{
		AllLessonsPassed: true,
		TotalCount:       len(lessons),
		FailedLessons:    []string{},
	}
	for _, l := range lessons {
		if l.Passed {
			summary.PassedCount++
		} else {
			summary.AllLessonsPassed = false
			summary.FailedLessons = append(summary.FailedLessons, l.Title)
		}
	}
	return summary
}
