package model

import "time"

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title             string `gorm:"size:200;not null" json:"title"`
	TitleSinhala      string `gorm:"size:200" json:"titleSi"`
	Description       string `gorm:"size:500" json:"description"`
	DescriptionSi     string `gorm:"size:500" json:"descriptionSi"`
	TimeLimit         int    `gorm:"default:60" json:"timeLimit"` // seconds for the whole quiz
	PointsPerQuestion int    `gorm:"default:10" json:"pointsPerQuestion"`
	CreatedBy         uint   `json:"createdBy"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Option keys are the fixed four-choice set.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint   `gorm:"index;not null" json:"quizId"`
	Question      string `gorm:"size:500;not null" json:"question"`
	QuestionSi    string `gorm:"size:500" json:"questionSi"`
	OptionAText   string `gorm:"size:255" json:"optionA"`
	OptionASi     string `gorm:"size:255" json:"optionASi"`
	OptionBText   string `gorm:"size:255" json:"optionB"`
	OptionBSi     string `gorm:"size:255" json:"optionBSi"`
	OptionCText   string `gorm:"size:255" json:"optionC"`
	OptionCSi     string `gorm:"size:255" json:"optionCSi"`
	OptionDText   string `gorm:"size:255" json:"optionD"`
	OptionDSi     string `gorm:"size:255" json:"optionDSi"`
	CorrectAnswer string `gorm:"size:1;not null" json:"-"` // A|B|C|D, never serialized to students
	OrderIndex    int    `gorm:"default:0" json:"orderIndex"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID         uint       `gorm:"index;not null" json:"userId"`
	QuizID         uint       `gorm:"index;not null" json:"quizId"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectAnswers int        `json:"correctAnswers"`
	TimeTaken      int        `json:"timeTaken"` // seconds, clamped to the quiz time limit
	StartedAt      time.Time  `json:"startedAt"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
