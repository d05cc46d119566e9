package course

import (
	"time"

	"gorm.io/gorm"
)

// Lesson represents a lesson requirement within a module
type Lesson struct {
	gorm.Model
	ModuleID    uint    `json:"module_id" gorm:"index;not null"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ContentType string  `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO
	TextContent string  `json:"text_content" gorm:"type:text"`
	VideoURL    string  `json:"video_url"`
	OrderIndex  int     `json:"order_index" gorm:"default:0"`
	MinScore    float64 `json:"min_score" gorm:"default:0"` // 0 = completion only, no score bar
	IsPublished bool    `json:"is_published" gorm:"default:false"`
	IsDeleted   bool    `gorm:"default:false"`
}

// LessonProgress tracks a student's completion of a lesson
type LessonProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"index;not null"`
	ModuleID    uint       `json:"module_id" gorm:"index;not null"`
	Score       float64    `json:"score" gorm:"default:0"`
	Passed      bool       `json:"passed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
