package course

import "gorm.io/gorm"

// UnlockDecision records the verdict of one unlock attempt, for auditing and
// the admin dashboard.
type UnlockDecision struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
	ModuleID uint `json:"module_id" gorm:"index;not null"`

	Eligible      bool    `json:"eligible"`
	CanPreview    bool    `json:"can_preview"`
	TotalScore    float64 `json:"total_score"`
	RequiredScore float64 `json:"required_score"`
	AttemptNumber int     `json:"attempt_number"`
	Decision      string  `json:"decision"` // COMPLETED, FAILED, DENIED
	Reason        string  `json:"reason"`

	IsDeleted bool `gorm:"default:false"`
}
