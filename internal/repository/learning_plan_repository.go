package repository

import (
	"edupiyasa_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningPlanRepository struct {
	DB *gorm.DB
}

func NewLearningPlanRepository(db *gorm.DB) *LearningPlanRepository {
	return &LearningPlanRepository{DB: db}
}

func (r *LearningPlanRepository) FindByUser(userID uint) (*model.LearningPlan, error) {
	var plan model.LearningPlan
	err := r.DB.Where("user_id = ?", userID).First(&plan).Error
	return &plan, err
}

// Upsert keeps exactly one plan row per user.
func (r *LearningPlanRepository) Upsert(plan *model.LearningPlan) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "daily_goal", "weekly_goal", "preferred_subjects"}),
	}).Create(plan).Error
}
