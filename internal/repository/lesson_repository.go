package repository

import (
	"edupiyasa_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) FindBySubject(subjectID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("subject_id = ?", subjectID).
		Order("order_index").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindAll() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Preload("Subject").
		Order("created_at DESC").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *LessonRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Count(&count).Error
	return count, err
}

// UpsertProgress marks a lesson complete for a user. The (user, lesson) pair is
// unique; completing twice refreshes the timestamp instead of inserting.
// Returns true when this is the first completion.
func (r *LessonRepository) UpsertProgress(userID, lessonID uint, at time.Time) (bool, error) {
	var existing model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error
	first := err == gorm.ErrRecordNotFound
	if err != nil && !first {
		return false, err
	}

	progress := model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &at,
	}
	err = r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
	}).Create(&progress).Error
	return first, err
}

func (r *LessonRepository) ProgressForUser(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	var rows []model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id IN ? AND completed = ?", userID, lessonIDs, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	completed := make(map[uint]bool, len(rows))
	for _, row := range rows {
		completed[row.LessonID] = true
	}
	return completed, nil
}
