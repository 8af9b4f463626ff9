package repository

import (
	"time"

	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithPlan(id uint) (*model.Interview, error)
	FindAllByUser(userID uint) ([]model.Interview, error)
	// CompleteIfInProgress flips IN_PROGRESS to COMPLETED and stamps the end
	// time in one conditional update. Returns the number of rows changed; 0
	// means the interview was already out of IN_PROGRESS (or missing).
	CompleteIfInProgress(id uint, endTime time.Time) (int64, error)
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) InterviewRepository
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) WithTx(tx *gorm.DB) InterviewRepository {
	return &interviewRepository{db: tx}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithPlan(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Preload("PlanSlots", func(db *gorm.DB) *gorm.DB {
		return db.Order("plan_slots.position ASC")
	}).First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("user_id = ?", userID).Order("start_time DESC").Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) CompleteIfInProgress(id uint, endTime time.Time) (int64, error) {
	res := r.db.Model(&model.Interview{}).
		Where("id = ? AND status = ?", id, model.StatusInProgress).
		Updates(map[string]interface{}{"status": model.StatusCompleted, "end_time": endTime})
	return res.RowsAffected, res.Error
}
