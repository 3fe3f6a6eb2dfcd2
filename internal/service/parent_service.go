package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"errors"
	"math"

	"gorm.io/gorm"
)

// FrustrationHintThreshold marks an activity run as a struggle signal when
// more hints than this were used.
const FrustrationHintThreshold = 2

const recentEmotionLimit = 10

type ParentService struct {
	UserRepo      *repository.UserRepository
	QuizRepo      *repository.QuizRepository
	ActivityRepo  *repository.ActivityRepository
	EmotionalRepo *repository.EmotionalRepository
}

func NewParentService(userRepo *repository.UserRepository, quizRepo *repository.QuizRepository, activityRepo *repository.ActivityRepository, emotionalRepo *repository.EmotionalRepository) *ParentService {
	return &ParentService{
		UserRepo:      userRepo,
		QuizRepo:      quizRepo,
		ActivityRepo:  activityRepo,
		EmotionalRepo: emotionalRepo,
	}
}

// StudentSummary is the per-child card on the parent dashboard.
type StudentSummary struct {
	UserID               uint    `json:"userId"`
	FullName             string  `json:"fullName"`
	Points               int     `json:"points"`
	StreakDays           int     `json:"streakDays"`
	QuizAttempts         int     `json:"quizAttempts"`
	AverageQuizScore     float64 `json:"averageQuizScore"`
	ActivityAttempts     int     `json:"activityAttempts"`
	AverageActivityScore int     `json:"averageActivityScore"` // rounded to nearest point
	TotalTimeSeconds     int     `json:"totalTimeSeconds"`
	FrustrationEvents    int     `json:"frustrationEvents"`
}

// Summarize folds a student's history into dashboard figures. Frustration
// events are activity runs that leaned on hints past the threshold.
func Summarize(user *model.User, quizAttempts []model.QuizAttempt, activityAttempts []model.ActivityAttempt) StudentSummary {
	summary := StudentSummary{
		UserID:     user.ID,
		FullName:   user.FullName,
		Points:     user.Points,
		StreakDays: user.StreakDays,
	}

	var quizScoreTotal int
	for _, a := range quizAttempts {
		if a.EndedAt == nil {
			continue
		}
		summary.QuizAttempts++
		quizScoreTotal += a.Score
		summary.TotalTimeSeconds += a.TimeTaken
	}
	if summary.QuizAttempts > 0 {
		summary.AverageQuizScore = float64(quizScoreTotal) / float64(summary.QuizAttempts)
	}

	summary.ActivityAttempts = len(activityAttempts)
	var activityScoreTotal int
	for _, a := range activityAttempts {
		activityScoreTotal += a.Score
		summary.TotalTimeSeconds += a.TimeTaken
		if a.HintsUsed > FrustrationHintThreshold {
			summary.FrustrationEvents++
		}
	}
	if summary.ActivityAttempts > 0 {
		summary.AverageActivityScore = int(math.Round(float64(activityScoreTotal) / float64(summary.ActivityAttempts)))
	}
	return summary
}

// ListStudents returns the pick-a-student list, alphabetical by name.
func (s *ParentService) ListStudents() ([]model.User, error) {
	return s.UserRepo.FindStudents(0)
}

// StudentOverview computes one student's dashboard summary.
func (s *ParentService) StudentOverview(studentID uint) (*StudentSummary, error) {
	user, err := s.findStudent(studentID)
	if err != nil {
		return nil, err
	}

	quizAttempts, err := s.QuizRepo.AttemptsByUser(user.ID)
	if err != nil {
		return nil, err
	}
	activityAttempts, err := s.ActivityRepo.AttemptsByUser(user.ID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(user, quizAttempts, activityAttempts)
	return &summary, nil
}

// Emotions returns the student's most recent recorded emotional states.
func (s *ParentService) Emotions(studentID uint) ([]model.EmotionalState, error) {
	if _, err := s.findStudent(studentID); err != nil {
		return nil, err
	}
	return s.EmotionalRepo.RecentStates(studentID, recentEmotionLimit)
}

// Alerts returns the student's unread parental alerts.
func (s *ParentService) Alerts(studentID uint) ([]model.ParentalAlert, error) {
	if _, err := s.findStudent(studentID); err != nil {
		return nil, err
	}
	return s.EmotionalRepo.UnreadAlerts(studentID)
}

func (s *ParentService) findStudent(studentID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != model.Student {
		return nil, util.ErrStudentNotFound
	}
	return user, nil
}

func (s *ParentService) MarkAlertRead(alertID uint) error {
	if _, err := s.EmotionalRepo.FindAlert(alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAlertNotFound
		}
		return err
	}
	return s.EmotionalRepo.MarkAlertRead(alertID)
}
