package repository

import (
	"edupiyasa_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Preload("Subject").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}

func (r *AssignmentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Assignment{}).Count(&count).Error
	return count, err
}
