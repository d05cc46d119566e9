package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Duration     int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`

	// Scoring configuration applied to every module unless overridden.
	// Weights should sum to 1.0; they are stored as configured and used as-is.
	RequiredScore              float64 `json:"required_score" gorm:"default:70"`
	WeightCourseContribution   float64 `json:"weight_course_contribution" gorm:"default:0.1"`
	WeightQuizScore            float64 `json:"weight_quiz_score" gorm:"default:0.3"`
	WeightAssignmentScore      float64 `json:"weight_assignment_score" gorm:"default:0.3"`
	WeightFinalAssessmentScore float64 `json:"weight_final_assessment_score" gorm:"default:0.3"`

	IsDeleted bool `gorm:"default:false"`
}
