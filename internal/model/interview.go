package model

import (
	"time"

	"gorm.io/gorm"
)

type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "IN_PROGRESS"
	StatusCompleted  InterviewStatus = "COMPLETED"
	StatusPaused     InterviewStatus = "PAUSED"
	StatusAbandoned  InterviewStatus = "ABANDONED"
)

type Interview struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	UserID            uint            `json:"user_id" gorm:"not null;index"`
	JobRole           string          `json:"job_role" gorm:"not null"`
	Domain            string          `json:"domain" gorm:"not null"` // "DSA", "System Design", "HR", ...
	Status            InterviewStatus `json:"status" gorm:"default:'IN_PROGRESS'"`
	StartTime         time.Time       `json:"start_time" gorm:"autoCreateTime"`
	EndTime           *time.Time      `json:"end_time,omitempty"`
	TotalQuestions    int             `json:"total_questions"`
	QuestionsAnswered int             `json:"questions_answered" gorm:"default:0"`
	OverallScore      float64         `json:"overall_score" gorm:"default:0"`
	ResumeContextUsed string          `json:"resume_context_used,omitempty" gorm:"type:text"`
	PlanSlots         []PlanSlot      `json:"plan_slots,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Answers           []Answer        `json:"answers,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

// PlanSlot pins one question into an interview's plan. The plan is written once
// at interview start and never appended to afterwards.
type PlanSlot struct {
	ID          uint `gorm:"primarykey" json:"id"`
	InterviewID uint `json:"interview_id" gorm:"not null;index"`
	QuestionID  uint `json:"question_id" gorm:"not null"`
	Position    int  `json:"position" gorm:"not null"`
}
