package service

import (
	"edupiyasa_backend/internal/model"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	student := &model.User{FullName: "Test Student", Points: 120, StreakDays: 3}
	student.ID = 7
	ended := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	quizAttempts := []model.QuizAttempt{
		{UserID: 7, Score: 30, TimeTaken: 60, EndedAt: &ended},
		{UserID: 7, Score: 10, TimeTaken: 90, EndedAt: &ended},
		{UserID: 7, Score: 0, TimeTaken: 0}, // abandoned, never submitted
	}
	activityAttempts := []model.ActivityAttempt{
		{UserID: 7, Score: 50, HintsUsed: 0, TimeTaken: 120},
		{UserID: 7, Score: 20, HintsUsed: 3, TimeTaken: 200},
		{UserID: 7, Score: 33, HintsUsed: 5, TimeTaken: 100},
		{UserID: 7, Score: 40, HintsUsed: 2, TimeTaken: 80},
	}

	got := Summarize(student, quizAttempts, activityAttempts)

	if got.UserID != 7 || got.FullName != "Test Student" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.Points != 120 || got.StreakDays != 3 {
		t.Errorf("profile fields wrong: points=%d streak=%d", got.Points, got.StreakDays)
	}
	if got.QuizAttempts != 2 {
		t.Errorf("QuizAttempts = %d, want 2 (abandoned attempt excluded)", got.QuizAttempts)
	}
	if got.AverageQuizScore != 20 {
		t.Errorf("AverageQuizScore = %v, want 20", got.AverageQuizScore)
	}
	if got.ActivityAttempts != 4 {
		t.Errorf("ActivityAttempts = %d, want 4", got.ActivityAttempts)
	}
	// (50+20+33+40)/4 = 35.75, rounded to 36
	if got.AverageActivityScore != 36 {
		t.Errorf("AverageActivityScore = %d, want 36", got.AverageActivityScore)
	}
	if got.TotalTimeSeconds != 60+90+120+200+100+80 {
		t.Errorf("TotalTimeSeconds = %d, want %d", got.TotalTimeSeconds, 60+90+120+200+100+80)
	}
	// hints_used 3 and 5 cross the threshold, 2 does not
	if got.FrustrationEvents != 2 {
		t.Errorf("FrustrationEvents = %d, want 2", got.FrustrationEvents)
	}
}

func TestSummarizeEmptyHistory(t *testing.T) {
	student := &model.User{FullName: "New Student"}
	student.ID = 1

	got := Summarize(student, nil, nil)

	if got.QuizAttempts != 0 || got.ActivityAttempts != 0 {
		t.Errorf("expected zero attempts, got %+v", got)
	}
	if got.AverageQuizScore != 0 || got.AverageActivityScore != 0 {
		t.Errorf("averages over empty history must be zero, got %+v", got)
	}
	if got.FrustrationEvents != 0 {
		t.Errorf("FrustrationEvents = %d, want 0", got.FrustrationEvents)
	}
}
