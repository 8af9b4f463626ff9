package repository

import (
	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.InterviewQuestion) error
	FindByID(id uint) (*model.InterviewQuestion, error)
	FindByIDs(ids []uint) ([]model.InterviewQuestion, error)
	FindAllActive() ([]model.InterviewQuestion, error)
	FindByDomainAndJobRole(domain, jobRole string) ([]model.InterviewQuestion, error)
	FindByTypeAndDomain(questionType model.QuestionType, domain string) ([]model.InterviewQuestion, error)
	FindByDomainAndDifficulty(domain string, difficulty int) ([]model.InterviewQuestion, error)
	Update(question *model.InterviewQuestion) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.InterviewQuestion) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.InterviewQuestion, error) {
	var question model.InterviewQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindAllActive() ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.Where("is_active = ?", true).Order("created_at desc").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByDomainAndJobRole(domain, jobRole string) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.Where("domain = ? AND job_role = ?", domain, jobRole).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByTypeAndDomain(questionType model.QuestionType, domain string) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.Where("type = ? AND domain = ?", questionType, domain).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByDomainAndDifficulty(domain string, difficulty int) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.Where("domain = ? AND difficulty = ? AND is_active = ?", domain, difficulty, true).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *model.InterviewQuestion) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.InterviewQuestion{}, id).Error
}
