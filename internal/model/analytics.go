package model

import (
	"time"

	"gorm.io/gorm"
)

// Analytics is the per-user running aggregate over completed interviews.
// BestScore/WorstScore use 0 as an "unset" sentinel, so a genuine overall
// score of exactly 0 cannot be told apart from "no score recorded yet".
type Analytics struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	UserID              uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	TotalInterviews     int            `json:"total_interviews" gorm:"default:0"`
	CompletedInterviews int            `json:"completed_interviews" gorm:"default:0"`
	AverageScore        float64        `json:"average_score" gorm:"default:0"`
	BestScore           float64        `json:"best_score" gorm:"default:0"`
	WorstScore          float64        `json:"worst_score" gorm:"default:0"`
	TopicStrengths      string         `json:"topic_strengths,omitempty" gorm:"type:text"`
	TopicWeaknesses     string         `json:"topic_weaknesses,omitempty" gorm:"type:text"`
	LastInterviewDate   *time.Time     `json:"last_interview_date,omitempty"`
	LastUpdated         time.Time      `json:"last_updated"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
