package course

import (
	"time"

	"gorm.io/gorm"
)

// Assignment represents a graded assignment within a module
type Assignment struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// AssignmentSubmission represents a student's submission, graded 0-100 by an admin
type AssignmentSubmission struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	AssignmentID uint       `json:"assignment_id" gorm:"index;not null"`
	ModuleID     uint       `json:"module_id" gorm:"index;not null"`
	Content      string     `json:"content" gorm:"type:text"`
	Score        float64    `json:"score" gorm:"default:0"`
	IsGraded     bool       `json:"is_graded" gorm:"default:false"`
	GradedBy     *uint      `json:"graded_by"`
	GradedAt     *time.Time `json:"graded_at"`
	IsDeleted    bool       `gorm:"default:false"`
}
