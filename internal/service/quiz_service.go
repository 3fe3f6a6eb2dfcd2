package service

import (
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
	UserRepo *repository.UserRepository
	UserSvc  *UserService
}

func NewQuizService(quizRepo *repository.QuizRepository, userRepo *repository.UserRepository, userSvc *UserService) *QuizService {
	return &QuizService{
		QuizRepo: quizRepo,
		UserRepo: userRepo,
		UserSvc:  userSvc,
	}
}

// QuizSummary is the catalog entry shown before a quiz is started.
type QuizSummary struct {
	model.Quiz
	QuestionCount int64 `json:"questionCount"`
}

func (s *QuizService) ListQuizzes() ([]QuizSummary, error) {
	quizzes, err := s.QuizRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		count, err := s.QuizRepo.QuestionCount(quiz.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, QuizSummary{Quiz: quiz, QuestionCount: count})
	}
	return summaries, nil
}

// QuizDetail carries the quiz and its questions in play order. Question rows
// omit the correct answer during serialization.
type QuizDetail struct {
	Quiz      model.Quiz           `json:"quiz"`
	Questions []model.QuizQuestion `json:"questions"`
}

func (s *QuizService) GetQuiz(id uint) (*QuizDetail, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.QuizRepo.Questions(id)
	if err != nil {
		return nil, err
	}

	return &QuizDetail{Quiz: *quiz, Questions: questions}, nil
}

// StartAttempt opens a scoring record before the first question is shown. The
// stored start time anchors the server-side clock for time-limit clamping.
func (s *QuizService) StartAttempt(userID, quizID uint) (*model.QuizAttempt, error) {
	detail, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if len(detail.Questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	attempt := &model.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		TotalQuestions: len(detail.Questions),
		StartedAt:      time.Now(),
	}
	if err := s.QuizRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// GradeQuiz counts answers whose option key equals the question's correct key.
// Unanswered questions and unknown question ids count as wrong.
func GradeQuiz(questions []model.QuizQuestion, answers map[uint]string) int {
	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// QuizScore is correct answers times the quiz's per-question point value.
func QuizScore(correct, pointsPerQuestion int) int {
	return correct * pointsPerQuestion
}

// ClampTimeTaken bounds the reported duration to [0, limit]. A timer that
// expired client-side reports exactly the limit.
func ClampTimeTaken(reported, limit int) int {
	if reported < 0 {
		return 0
	}
	if limit > 0 && reported > limit {
		return limit
	}
	return reported
}

// SubmitAttempt grades the answer sheet, closes the attempt and credits the
// score to the student. Submitting twice, or against another user's attempt,
// fails without touching the stored record.
func (s *QuizService) SubmitAttempt(userID, quizID, attemptID uint, answers map[uint]string, timeTaken int) (*model.QuizAttempt, error) {
	attempt, err := s.QuizRepo.FindAttempt(attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID || attempt.QuizID != quizID {
		return nil, util.ErrForeignAttempt
	}
	if attempt.EndedAt != nil {
		return nil, util.ErrAttemptSubmitted
	}

	for _, choice := range answers {
		switch choice {
		case model.OptionA, model.OptionB, model.OptionC, model.OptionD:
		default:
			return nil, util.ErrUnknownOption
		}
	}

	quiz, err := s.QuizRepo.FindByID(attempt.QuizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.QuizRepo.Questions(attempt.QuizID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	correct := GradeQuiz(questions, answers)
	attempt.CorrectAnswers = correct
	attempt.Score = QuizScore(correct, quiz.PointsPerQuestion)
	attempt.TimeTaken = ClampTimeTaken(timeTaken, quiz.TimeLimit)
	attempt.EndedAt = &now

	if err := s.QuizRepo.SaveAttempt(attempt); err != nil {
		return nil, err
	}

	if attempt.Score > 0 {
		if err := s.UserRepo.AddPoints(userID, attempt.Score); err != nil {
			return nil, err
		}
		awardPoints("quiz", attempt.Score)
	}
	recordAttempt("quiz")

	if err := s.UserSvc.TouchStreak(userID); err != nil {
		return attempt, nil
	}
	return attempt, nil
}

func (s *QuizService) AttemptHistory(userID uint) ([]model.QuizAttempt, error) {
	return s.QuizRepo.AttemptsByUser(userID)
}
