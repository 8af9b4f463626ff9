package repository

import (
	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByInterviewID(interviewID uint) ([]model.Answer, error)
	FindByInterviewIDWithQuestions(interviewID uint) ([]model.Answer, error)
	ExistsForQuestion(interviewID, questionID uint) (bool, error)
	WithTx(tx *gorm.DB) AnswerRepository
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByInterviewID(interviewID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("interview_id = ?", interviewID).Order("answered_at ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindByInterviewIDWithQuestions(interviewID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Preload("Question").Where("interview_id = ?", interviewID).Order("answered_at ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) ExistsForQuestion(interviewID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("interview_id = ? AND question_id = ?", interviewID, questionID).
		Count(&count).Error
	return count > 0, err
}
