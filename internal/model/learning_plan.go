package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *UintList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for UintList")
}

// LearningPlan is a single upserted row per user.
// swagger:model LearningPlan
type LearningPlan struct {
	BaseModel
	UserID            uint     `gorm:"uniqueIndex;not null" json:"userId"`
	Title             string   `gorm:"size:200;not null" json:"title"`
	Description       string   `gorm:"size:500" json:"description"`
	DailyGoal         int      `gorm:"default:1" json:"dailyGoal"`
	WeeklyGoal        int      `gorm:"default:5" json:"weeklyGoal"`
	PreferredSubjects UintList `gorm:"type:json" json:"preferredSubjects"`
}

func (LearningPlan) TableName() string {
	return "learning_plans"
}
