package repository

import (
	"edupiyasa_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) FindAll() ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Order("grade").Order("title").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.First(&activity, id).Error
	return &activity, err
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Activity{}, id).Error
}

func (r *ActivityRepository) CreateAttempt(attempt *model.ActivityAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *ActivityRepository) AttemptsByUser(userID uint) ([]model.ActivityAttempt, error) {
	var attempts []model.ActivityAttempt
	err := r.DB.Where("user_id = ?", userID).Find(&attempts).Error
	return attempts, err
}
