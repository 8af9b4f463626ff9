package repository

import (
	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindByInterviewID(interviewID uint) (*model.Feedback, error)
	WithTx(tx *gorm.DB) FeedbackRepository
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) WithTx(tx *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: tx}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindByInterviewID(interviewID uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.Where("interview_id = ?", interviewID).Order("generated_at DESC").First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
