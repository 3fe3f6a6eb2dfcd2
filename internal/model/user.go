package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

const (
	LanguageEnglish = "en"
	LanguageSinhala = "si"
)

// swagger:model User
type User struct {
	BaseModel
	FullName     string    `gorm:"size:100;not null" json:"fullName"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	Role         UserRole  `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Grade        int       `gorm:"default:0" json:"grade"` // school grade 1-13, 0 for staff
	Points       int       `gorm:"default:0" json:"points"`
	StreakDays   int       `gorm:"default:0" json:"streakDays"`
	LastActivity time.Time `json:"lastActivity"`
	Language     string    `gorm:"size:10;default:'en'" json:"language"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	Disabled     bool      `gorm:"default:false" json:"disabled"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// ValidLanguage reports whether lang is one of the two supported UI languages.
func ValidLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageSinhala
}
