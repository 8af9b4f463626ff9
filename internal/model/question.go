package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTechnical  QuestionType = "TECHNICAL"
	QuestionBehavioral QuestionType = "BEHAVIORAL"
	QuestionCoding     QuestionType = "CODING"
)

// Creator tags distinguish where a question's text came from.
const (
	CreatedByAI       = "ai_generated"
	CreatedByFallback = "fallback_generated"
	CreatedByAdmin    = "admin"
)

type InterviewQuestion struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Question         string         `json:"question" gorm:"type:text;not null"`
	Type             QuestionType   `json:"type" gorm:"not null"`
	Domain           string         `json:"domain" gorm:"not null;index"`
	JobRole          string         `json:"job_role" gorm:"not null;index"`
	ExpectedAnswer   string         `json:"expected_answer,omitempty" gorm:"type:text"`
	Hints            string         `json:"hints,omitempty" gorm:"type:text"`
	Difficulty       int            `json:"difficulty"` // 1-5 scale
	TimeLimitSeconds int            `json:"time_limit_seconds"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	CreatedBy        string         `json:"created_by" gorm:"not null"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
