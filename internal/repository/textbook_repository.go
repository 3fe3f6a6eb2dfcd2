package repository

import (
	"edupiyasa_backend/internal/model"

	"gorm.io/gorm"
)

type TextbookRepository struct {
	DB *gorm.DB
}

func NewTextbookRepository(db *gorm.DB) *TextbookRepository {
	return &TextbookRepository{DB: db}
}

// FindAll returns the whole catalog in (grade, title) order; filtering happens
// in the service as a pure predicate pass.
func (r *TextbookRepository) FindAll() ([]model.Textbook, error) {
	var textbooks []model.Textbook
	err := r.DB.Preload("Subject").
		Order("grade").Order("title").
		Find(&textbooks).Error
	return textbooks, err
}

func (r *TextbookRepository) FindByID(id uint) (*model.Textbook, error) {
	var textbook model.Textbook
	err := r.DB.First(&textbook, id).Error
	return &textbook, err
}

func (r *TextbookRepository) Create(textbook *model.Textbook) error {
	return r.DB.Create(textbook).Error
}

func (r *TextbookRepository) Update(textbook *model.Textbook) error {
	return r.DB.Save(textbook).Error
}

func (r *TextbookRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Textbook{}, id).Error
}
