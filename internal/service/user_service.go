package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"time"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, fullName string, grade int) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if grade > 0 {
		user.Grade = grade
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetLanguage(userID uint, lang string) error {
	if !model.ValidLanguage(lang) {
		return util.ErrUnsupportedLanguage
	}
	return s.UserRepo.UpdateLanguage(userID, lang)
}

// NextStreak computes the streak counter after an activity on `now`, given the
// previous activity time. Same day keeps the count, the following day extends
// it, anything longer restarts at 1.
func NextStreak(lastActivity, now time.Time, current int) int {
	if current == 0 || lastActivity.IsZero() {
		return 1
	}
	last := lastActivity.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	switch days := int(today.Sub(last).Hours() / 24); days {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// TouchStreak advances the user's daily streak for an activity happening now.
func (s *UserService) TouchStreak(userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	now := time.Now()
	streak := NextStreak(user.LastActivity, now, user.StreakDays)
	return s.UserRepo.UpdateStreak(userID, streak, now)
}
