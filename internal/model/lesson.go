package model

import "time"

// swagger:model Lesson
type Lesson struct {
	BaseModel
	SubjectID     uint    `gorm:"index;not null" json:"subjectId"`
	Subject       Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title         string  `gorm:"size:200;not null" json:"title"`
	TitleSinhala  string  `gorm:"size:200" json:"titleSi"`
	Description   string  `gorm:"size:500" json:"description"`
	DescriptionSi string  `gorm:"size:500" json:"descriptionSi"`
	Content       string  `gorm:"type:text" json:"content"` // markdown
	VideoURL      string  `gorm:"size:255" json:"videoUrl,omitempty"`
	VideoDuration float64 `json:"videoDuration,omitempty"` // seconds, probed on upload
	PDFURL        string  `gorm:"size:255" json:"pdfUrl,omitempty"`
	OrderIndex    int     `gorm:"default:0" json:"orderIndex"`
	CreatedBy     uint    `json:"createdBy"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonProgress records one user's completion of one lesson. Upserted, never
// duplicated: (user_id, lesson_id) is unique.
type LessonProgress struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID    uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
