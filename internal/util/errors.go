package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrTextbookNotFound     = errors.New("textbook not found")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptSubmitted     = errors.New("attempt already submitted")
	ErrIncompleteMatches    = errors.New("all items must be matched before checking")
	ErrUnknownOption        = errors.New("selected option must be one of A, B, C, D")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrUnsupportedLanguage  = errors.New("unsupported language")
	ErrNoQuestions          = errors.New("quiz has no questions")
	ErrForeignAttempt       = errors.New("attempt does not belong to this user or quiz")
	ErrLearningPlanNotFound = errors.New("learning plan not found")
)
