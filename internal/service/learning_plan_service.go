package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type LearningPlanService struct {
	PlanRepo    *repository.LearningPlanRepository
	SubjectRepo *repository.SubjectRepository
}

func NewLearningPlanService(planRepo *repository.LearningPlanRepository, subjectRepo *repository.SubjectRepository) *LearningPlanService {
	return &LearningPlanService{PlanRepo: planRepo, SubjectRepo: subjectRepo}
}

func (s *LearningPlanService) GetPlan(userID uint) (*model.LearningPlan, error) {
	plan, err := s.PlanRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearningPlanNotFound
	}
	return plan, err
}

// SavePlan writes the user's single plan row, replacing any previous one.
// Preferred subject ids that no longer resolve are dropped silently.
func (s *LearningPlanService) SavePlan(userID uint, plan *model.LearningPlan) (*model.LearningPlan, error) {
	plan.UserID = userID

	kept := make(model.UintList, 0, len(plan.PreferredSubjects))
	for _, id := range plan.PreferredSubjects {
		if _, err := s.SubjectRepo.FindByID(id); err == nil {
			kept = append(kept, id)
		}
	}
	plan.PreferredSubjects = kept

	if plan.DailyGoal <= 0 {
		plan.DailyGoal = 1
	}
	if plan.WeeklyGoal <= 0 {
		plan.WeeklyGoal = 5
	}

	if err := s.PlanRepo.Upsert(plan); err != nil {
		return nil, err
	}
	return s.PlanRepo.FindByUser(userID)
}
