package course

import "gorm.io/gorm"

// QuizContent represents a multiple choice quiz within a module. Kind FINAL
// marks the module's terminal assessment; its score feeds the final assessment
// sub-score instead of the quiz average.
type QuizContent struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Question    string `json:"question" gorm:"type:text"`
	Kind        string `json:"kind" gorm:"default:'QUIZ'"` // QUIZ, FINAL
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// QuizOption represents an option for a quiz question
type QuizOption struct {
	gorm.Model
	ContentID  uint   `json:"content_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt represents a student's attempt at a quiz
type QuizAttempt struct {
	gorm.Model
	UserID          uint    `json:"user_id" gorm:"index;not null"`
	ContentID       uint    `json:"content_id" gorm:"index;not null"`
	ModuleID        uint    `json:"module_id" gorm:"index;not null"`
	SelectedOptions string  `json:"selected_options"` // JSON array of selected option IDs
	Score           int     `json:"score"`            // correct options selected
	MaxScore        int     `json:"max_score"`        // total correct options
	Percentage      float64 `json:"percentage"`       // 0-100
	IsCorrect       bool    `json:"is_correct" gorm:"default:false"`
	AttemptNumber   int     `json:"attempt_number" gorm:"default:1"`
	IsDeleted       bool    `gorm:"default:false"`
}
