package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"edupiyasa_backend/pkg/logger"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LessonCompletionPoints is credited the first time a student finishes a lesson.
const LessonCompletionPoints = 10

type LessonService struct {
	LessonRepo *repository.LessonRepository
	UserRepo   *repository.UserRepository
	UserSvc    *UserService
}

func NewLessonService(lessonRepo *repository.LessonRepository, userRepo *repository.UserRepository, userSvc *UserService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		UserRepo:   userRepo,
		UserSvc:    userSvc,
	}
}

func (s *LessonService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

// CompletionResult reports whether the lesson was newly completed and how many
// points that earned. Repeat completions succeed but award nothing.
type CompletionResult struct {
	FirstCompletion bool `json:"first_completion"`
	PointsAwarded   int  `json:"points_awarded"`
}

func (s *LessonService) CompleteLesson(userID, lessonID uint) (*CompletionResult, error) {
	if _, err := s.GetLesson(lessonID); err != nil {
		return nil, err
	}

	first, err := s.LessonRepo.UpsertProgress(userID, lessonID, time.Now())
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{FirstCompletion: first}
	if first {
		if err := s.UserRepo.AddPoints(userID, LessonCompletionPoints); err != nil {
			return nil, err
		}
		result.PointsAwarded = LessonCompletionPoints
		awardPoints("lesson", LessonCompletionPoints)
	}

	if err := s.UserSvc.TouchStreak(userID); err != nil {
		logger.Log.Warn("streak update failed",
			zap.Uint("user_id", userID),
			zap.Error(err))
	}

	return result, nil
}
