package model

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	InterviewID     uint           `json:"interview_id" gorm:"not null;index"`
	Strengths       string         `json:"strengths,omitempty" gorm:"type:text"`
	Weaknesses      string         `json:"weaknesses,omitempty" gorm:"type:text"`
	Improvements    string         `json:"improvements,omitempty" gorm:"type:text"`
	OverallComments string         `json:"overall_comments,omitempty" gorm:"type:text"`
	OverallScore    float64        `json:"overall_score"`
	GeneratedAt     time.Time      `json:"generated_at" gorm:"autoCreateTime"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
