package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// SupportTicket is a student help request, optionally tied to a course or
// module (retake requests, grading disputes, content issues). Message holds
// the conversation thread as a JSON array of {sender, text, time} entries.
type SupportTicket struct {
	gorm.Model
	UserID   uint  `json:"user_id" gorm:"index;not null"`
	CourseID *uint `json:"course_id" gorm:"index"`
	ModuleID *uint `json:"module_id"`

	Subject  string          `json:"subject"`
	Message  json.RawMessage `json:"message" gorm:"type:jsonb"`
	Status   string          `json:"status" gorm:"default:'OPEN'"`      // OPEN, ANSWERED, CLOSED
	Priority string          `json:"priority" gorm:"default:'MEDIUM'"`  // LOW, MEDIUM, HIGH
	Category string          `json:"category" gorm:"default:'GENERAL'"` // GENERAL, CONTENT, GRADING, RETAKE, CERTIFICATE

	IsDeleted bool `json:"is_deleted" gorm:"default:false"`
}
