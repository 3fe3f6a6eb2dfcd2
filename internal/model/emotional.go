package model

// EmotionalState rows are written by instrumentation outside this service;
// the API only reads them for the parent dashboard.
type EmotionalState struct {
	BaseModel
	UserID       uint   `gorm:"index;not null" json:"userId"`
	State        string `gorm:"size:50;not null" json:"state"` // frustrated, engaged, confused, excited, bored
	Intensity    int    `json:"intensity"`                     // 1-10
	Context      string `gorm:"size:500" json:"context"`
	ActivityType string `gorm:"size:50" json:"activityType"`
	ActivityID   uint   `json:"activityId"`
}

func (EmotionalState) TableName() string {
	return "emotional_states"
}

// swagger:model ParentalAlert
type ParentalAlert struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Message  string `gorm:"size:500;not null" json:"message"`
	Severity string `gorm:"size:20;default:'normal'" json:"severity"` // normal | high
	Read     bool   `gorm:"default:false;index" json:"read"`
}

func (ParentalAlert) TableName() string {
	return "parental_alerts"
}
