package progression

import "fmt"

// Recommendations builds the ordered remediation list for a report.
//
// Priority classes, each fully rendered before the next:
//  1. incomplete prerequisites, one entry per module in course order
//  2. the score gap, when the score bar is not met
//  3. failing lessons, one entry per lesson in lesson order
//  4. a confirmation entry when eligible, so the list is never empty on success
//
// Within a class the source order is kept as-is; no ranking by deficit.
func Recommendations(in EvalInput, prereqs PrerequisiteSummary, lessons LessonSummary, totalScore float64, eligible, scoreMet bool) []string {
	recs := []string{}

	for _, p := range in.Prerequisites {
		if !p.Completed {
			recs = append(recs, fmt.Sprintf("Complete prerequisite module \"%s\" before attempting this module.", p.Title))
		}
	}

	if !scoreMet {
		gap := in.RequiredScore - totalScore
		recs = append(recs, fmt.Sprintf("Improve your cumulative score by %.1f points to reach the required %.1f.", gap, in.RequiredScore))
	}

	for _, l := range in.Lessons {
		if !l.Passed {
			recs = append(recs, fmt.Sprintf("Pass lesson \"%s\" to meet the module's lesson requirements.", l.Title))
		}
	}

	if eligible {
		recs = append(recs, "All requirements met. You are ready to unlock the next module.")
	}

	return recs
}
