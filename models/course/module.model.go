package course

import "gorm.io/gorm"

// Module represents a graded section within a course, gated behind prerequisites
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Module order in course

	// RequiredScore <= 0 means use the course-level value
	RequiredScore float64 `json:"required_score" gorm:"default:0"`
	MaxAttempts   int     `json:"max_attempts" gorm:"default:3"`

	IsDeleted bool `gorm:"default:false"`
}

// ModulePrerequisite links a module to another module that must be COMPLETED
// before this module can become eligible
type ModulePrerequisite struct {
	gorm.Model
	ModuleID         uint `json:"module_id" gorm:"index;not null"`
	RequiredModuleID uint `json:"required_module_id" gorm:"index;not null"`
	OrderIndex       int  `json:"order_index" gorm:"default:0"` // evaluation/display order
	IsDeleted        bool `gorm:"default:false"`
}
