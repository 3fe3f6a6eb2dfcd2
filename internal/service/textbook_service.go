package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// FilterAll is the wildcard value for subject and medium filters.
const FilterAll = "all"

type TextbookService struct {
	TextbookRepo *repository.TextbookRepository
}

func NewTextbookService(textbookRepo *repository.TextbookRepository) *TextbookService {
	return &TextbookService{TextbookRepo: textbookRepo}
}

// TextbookFilter narrows the library listing. Grade 0 means every grade;
// Subject and Medium accept "all" as a wildcard.
type TextbookFilter struct {
	Grade   int
	Subject string // subject id as decimal string, or "all"
	Medium  string
}

// FilterTextbooks keeps books matching every active filter, preserving order.
func FilterTextbooks(books []model.Textbook, f TextbookFilter) []model.Textbook {
	out := make([]model.Textbook, 0, len(books))
	for _, book := range books {
		if f.Grade != 0 && book.Grade != f.Grade {
			continue
		}
		if f.Subject != "" && f.Subject != FilterAll {
			id, err := strconv.ParseUint(f.Subject, 10, 32)
			if err != nil || book.SubjectID == nil || *book.SubjectID != uint(id) {
				continue
			}
		}
		if f.Medium != "" && f.Medium != FilterAll && book.Medium != f.Medium {
			continue
		}
		out = append(out, book)
	}
	return out
}

func (s *TextbookService) ListTextbooks(f TextbookFilter) ([]model.Textbook, error) {
	books, err := s.TextbookRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return FilterTextbooks(books, f), nil
}

func (s *TextbookService) GetTextbook(id uint) (*model.Textbook, error) {
	book, err := s.TextbookRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTextbookNotFound
	}
	return book, err
}
