package service

import (
	"edupiyasa_backend/internal/model"
	"testing"
)

func question(id uint, correct string) model.QuizQuestion {
	q := model.QuizQuestion{CorrectAnswer: correct}
	q.ID = id
	return q
}

func TestGradeQuiz(t *testing.T) {
	questions := []model.QuizQuestion{
		question(1, model.OptionA),
		question(2, model.OptionC),
		question(3, model.OptionB),
	}

	tests := []struct {
		name    string
		answers map[uint]string
		want    int
	}{
		{
			name:    "all correct",
			answers: map[uint]string{1: "A", 2: "C", 3: "B"},
			want:    3,
		},
		{
			name:    "one wrong",
			answers: map[uint]string{1: "A", 2: "C", 3: "D"},
			want:    2,
		},
		{
			name:    "timer expiry leaves gaps",
			answers: map[uint]string{1: "A"},
			want:    1,
		},
		{
			name:    "no answers",
			answers: map[uint]string{},
			want:    0,
		},
		{
			name:    "unknown question id ignored",
			answers: map[uint]string{1: "A", 99: "A"},
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeQuiz(questions, tt.answers); got != tt.want {
				t.Errorf("GradeQuiz() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuizScore(t *testing.T) {
	tests := []struct {
		correct, perQuestion, want int
	}{
		{3, 10, 30},
		{0, 10, 0},
		{5, 4, 20},
	}
	for _, tt := range tests {
		if got := QuizScore(tt.correct, tt.perQuestion); got != tt.want {
			t.Errorf("QuizScore(%d, %d) = %d, want %d", tt.correct, tt.perQuestion, got, tt.want)
		}
	}
}

func TestClampTimeTaken(t *testing.T) {
	tests := []struct {
		name     string
		reported int
		limit    int
		want     int
	}{
		{"within limit", 45, 60, 45},
		{"at limit", 60, 60, 60},
		{"over limit clamps", 90, 60, 60},
		{"negative clamps to zero", -5, 60, 0},
		{"no limit passes through", 500, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampTimeTaken(tt.reported, tt.limit); got != tt.want {
				t.Errorf("ClampTimeTaken(%d, %d) = %d, want %d", tt.reported, tt.limit, got, tt.want)
			}
		})
	}
}
