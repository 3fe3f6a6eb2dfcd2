package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	UserRepo     *repository.UserRepository
	UserSvc      *UserService
}

func NewActivityService(activityRepo *repository.ActivityRepository, userRepo *repository.UserRepository, userSvc *UserService) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
		UserSvc:      userSvc,
	}
}

func (s *ActivityService) ListActivities() ([]model.Activity, error) {
	return s.ActivityRepo.FindAll()
}

func (s *ActivityService) GetActivity(id uint) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrActivityNotFound
	}
	return activity, err
}

// CountCorrectMatches scores a submitted board. A board maps every right slot
// "right-i" to a dragged left card "left-j"; the placement is correct when
// j == i. Returns ErrIncompleteMatches unless all n slots are filled.
func CountCorrectMatches(n int, matches map[string]string) (int, error) {
	if len(matches) < n {
		return 0, util.ErrIncompleteMatches
	}
	correct := 0
	for i := 0; i < n; i++ {
		if matches[fmt.Sprintf("right-%d", i)] == fmt.Sprintf("left-%d", i) {
			correct++
		}
	}
	return correct, nil
}

// MatchingScore is the activity's point value prorated by correct placements,
// rounded down.
func MatchingScore(correct, total, points int) int {
	if total == 0 {
		return 0
	}
	return correct * points / total
}

// SubmitAttempt grades a completed board and records the run. Profile points
// are credited only for a perfect board; partial scores are kept on the
// attempt for history but award nothing.
func (s *ActivityService) SubmitAttempt(userID, activityID uint, matches map[string]string, hintsUsed, timeTaken int) (*model.ActivityAttempt, error) {
	activity, err := s.GetActivity(activityID)
	if err != nil {
		return nil, err
	}

	total := len(activity.Pairs)
	correct, err := CountCorrectMatches(total, matches)
	if err != nil {
		return nil, err
	}

	attempt := &model.ActivityAttempt{
		UserID:         userID,
		ActivityID:     activityID,
		Score:          MatchingScore(correct, total, activity.Points),
		TotalItems:     total,
		CorrectMatches: correct,
		HintsUsed:      hintsUsed,
		TimeTaken:      timeTaken,
	}
	if err := s.ActivityRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}

	if correct == total && attempt.Score > 0 {
		if err := s.UserRepo.AddPoints(userID, attempt.Score); err != nil {
			return nil, err
		}
		awardPoints("activity", attempt.Score)
	}
	recordAttempt("activity")

	if err := s.UserSvc.TouchStreak(userID); err != nil {
		return attempt, nil
	}
	return attempt, nil
}

func (s *ActivityService) AttemptHistory(userID uint) ([]model.ActivityAttempt, error) {
	return s.ActivityRepo.AttemptsByUser(userID)
}
