package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	SubjectID   uint       `gorm:"index;not null" json:"subjectId"`
	Subject     Subject    `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedBy   uint       `json:"createdBy"`
}

func (Assignment) TableName() string {
	return "assignments"
}
