package course

import (
	"time"

	"gorm.io/gorm"
)

// ModuleProgress tracks a student's progression through one module.
// Status follows LOCKED -> UNLOCKED -> IN_PROGRESS -> COMPLETED | FAILED;
// FAILED can only be left through an admin retake grant.
type ModuleProgress struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
	ModuleID uint `json:"module_id" gorm:"index;not null"`

	Status       string `json:"status" gorm:"default:'LOCKED'"`
	AttemptsUsed int    `json:"attempts_used" gorm:"default:0"`
	MaxAttempts  int    `json:"max_attempts" gorm:"default:3"`

	// Sub-scores on a 0-100 scale. Recomputed from their sources on every
	// evaluation; stored for progress listings and the dashboard.
	CourseContribution   float64 `json:"course_contribution" gorm:"default:0"`
	QuizScore            float64 `json:"quiz_score" gorm:"default:0"`
	AssignmentScore      float64 `json:"assignment_score" gorm:"default:0"`
	FinalAssessmentScore float64 `json:"final_assessment_score" gorm:"default:0"`
	CumulativeScore      float64 `json:"cumulative_score" gorm:"default:0"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
