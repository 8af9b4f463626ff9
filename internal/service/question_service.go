package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService covers the admin-facing question catalog: questions
// authored outside any interview session. Plan questions are created by the
// plan generator instead and never flow through here.
type QuestionService interface {
	GetAllActiveQuestions() ([]model.InterviewQuestion, error)
	GetQuestionsByDomainAndJobRole(domain, jobRole string) ([]model.InterviewQuestion, error)
	GetQuestionsByType(questionType model.QuestionType, domain string) ([]model.InterviewQuestion, error)
	GetQuestionsByDifficulty(domain string, difficulty int) ([]model.InterviewQuestion, error)
	GetQuestionByID(id uint) (*model.InterviewQuestion, error)
	CreateQuestion(req dto.QuestionCreateDTO) (*model.InterviewQuestion, error)
	UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*model.InterviewQuestion, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) GetAllActiveQuestions() ([]model.InterviewQuestion, error) {
	return s.questionRepo.FindAllActive()
}

func (s *questionService) GetQuestionsByDomainAndJobRole(domain, jobRole string) ([]model.InterviewQuestion, error) {
	return s.questionRepo.FindByDomainAndJobRole(domain, jobRole)
}

func (s *questionService) GetQuestionsByType(questionType model.QuestionType, domain string) ([]model.InterviewQuestion, error) {
	return s.questionRepo.FindByTypeAndDomain(questionType, domain)
}

func (s *questionService) GetQuestionsByDifficulty(domain string, difficulty int) ([]model.InterviewQuestion, error) {
	return s.questionRepo.FindByDomainAndDifficulty(domain, difficulty)
}

func (s *questionService) GetQuestionByID(id uint) (*model.InterviewQuestion, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*model.InterviewQuestion, error) {
	var question model.InterviewQuestion
	if err := copier.Copy(&question, &req); err != nil {
		return nil, err
	}
	question.CreatedBy = model.CreatedByAdmin
	question.IsActive = true

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}
	return &question, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*model.InterviewQuestion, error) {
	question, err := s.GetQuestionByID(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(question, &req); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.GetQuestionByID(id); err != nil {
		return err
	}
	return s.questionRepo.Delete(id)
}
