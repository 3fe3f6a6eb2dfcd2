package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// MatchPair is one left/right pairing of a matching activity, with both
// language renderings. Correctness is positional: the pair's index is the
// answer key, not the text.
type MatchPair struct {
	Left    string `json:"left"`
	LeftSi  string `json:"left_si"`
	Right   string `json:"right"`
	RightSi string `json:"right_si"`
}

type MatchPairList []MatchPair

func (l MatchPairList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MatchPairList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for MatchPairList")
}

// swagger:model Activity
type Activity struct {
	BaseModel
	Title         string        `gorm:"size:200;not null" json:"title"`
	TitleSinhala  string        `gorm:"size:200" json:"titleSi"`
	Description   string        `gorm:"size:500" json:"description"`
	DescriptionSi string        `gorm:"size:500" json:"descriptionSi"`
	Grade         int           `gorm:"index" json:"grade"`
	ActivityType  string        `gorm:"size:50;default:'matching'" json:"activityType"`
	Pairs         MatchPairList `gorm:"type:json" json:"pairs"`
	Points        int           `gorm:"default:50" json:"points"`
	CreatedBy     uint          `json:"createdBy"`
}

func (Activity) TableName() string {
	return "activities"
}

// swagger:model ActivityAttempt
type ActivityAttempt struct {
	BaseModel
	UserID         uint `gorm:"index;not null" json:"userId"`
	ActivityID     uint `gorm:"index;not null" json:"activityId"`
	Score          int  `json:"score"`
	TotalItems     int  `json:"totalItems"`
	CorrectMatches int  `json:"correctMatches"`
	HintsUsed      int  `gorm:"default:0" json:"hintsUsed"`
	TimeTaken      int  `json:"timeTaken"` // seconds
}

func (ActivityAttempt) TableName() string {
	return "activity_attempts"
}
