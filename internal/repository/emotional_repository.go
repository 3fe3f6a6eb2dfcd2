package repository

import (
	"edupiyasa_backend/internal/model"

	"gorm.io/gorm"
)

// EmotionalRepository reads rows written by the emotion-tracking
// instrumentation; this service never inserts them.
type EmotionalRepository struct {
	DB *gorm.DB
}

func NewEmotionalRepository(db *gorm.DB) *EmotionalRepository {
	return &EmotionalRepository{DB: db}
}

func (r *EmotionalRepository) RecentStates(userID uint, limit int) ([]model.EmotionalState, error) {
	var states []model.EmotionalState
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&states).Error
	return states, err
}

func (r *EmotionalRepository) UnreadAlerts(userID uint) ([]model.ParentalAlert, error) {
	var alerts []model.ParentalAlert
	err := r.DB.Where("user_id = ? AND `read` = ?", userID, false).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *EmotionalRepository) FindAlert(id uint) (*model.ParentalAlert, error) {
	var alert model.ParentalAlert
	err := r.DB.First(&alert, id).Error
	return &alert, err
}

func (r *EmotionalRepository) MarkAlertRead(id uint) error {
	return r.DB.Model(&model.ParentalAlert{}).
		Where("id = ?", id).
		Update("read", true).
		Error
}
