package repository

import (
	"github.com/lshigami/Marmosets/internal/model"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	Create(analytics *model.Analytics) error
	FindByUserID(userID uint) (*model.Analytics, error)
	Update(analytics *model.Analytics) error
	WithTx(tx *gorm.DB) AnalyticsRepository
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) WithTx(tx *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: tx}
}

func (r *analyticsRepository) Create(analytics *model.Analytics) error {
	return r.db.Create(analytics).Error
}

func (r *analyticsRepository) FindByUserID(userID uint) (*model.Analytics, error) {
	var analytics model.Analytics
	if err := r.db.Where("user_id = ?", userID).First(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *analyticsRepository) Update(analytics *model.Analytics) error {
	return r.db.Save(analytics).Error
}
