package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID               uint              `gorm:"primarykey" json:"id"`
	InterviewID      uint              `json:"interview_id" gorm:"not null;uniqueIndex:idx_answer_interview_question"`
	QuestionID       uint              `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_interview_question"`
	Question         InterviewQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText       string            `json:"answer_text" gorm:"type:text"`
	AnswerAudio      string            `json:"answer_audio,omitempty"`
	TimeTakenSeconds int               `json:"time_taken_seconds"`
	AnsweredAt       time.Time         `json:"answered_at" gorm:"autoCreateTime"`
	Score            *float64          `json:"score,omitempty"` // 0-100
	AIEvaluation     string            `json:"ai_evaluation,omitempty" gorm:"type:text"`
	IsCorrect        bool              `json:"is_correct"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}
