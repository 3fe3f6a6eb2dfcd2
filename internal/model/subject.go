package model

// Icon names are a closed set; anything else falls back to IconDefault so the
// client never has to resolve a free-text icon key.
const IconDefault = "book"

var subjectIcons = map[string]bool{
	"book":       true,
	"calculator": true,
	"flask":      true,
	"globe":      true,
	"palette":    true,
	"music":      true,
	"monitor":    true,
	"leaf":       true,
}

// swagger:model Subject
type Subject struct {
	BaseModel
	Name          string `gorm:"size:100;not null" json:"name"`
	NameSinhala   string `gorm:"size:100" json:"nameSi"`
	Description   string `gorm:"size:500" json:"description"`
	DescriptionSi string `gorm:"size:500" json:"descriptionSi"`
	Icon          string `gorm:"size:50;default:'book'" json:"icon"`
	Color         string `gorm:"size:20" json:"color"`
	Grade         int    `gorm:"index" json:"grade"`
}

func (Subject) TableName() string {
	return "subjects"
}

// NormalizeIcon maps an icon key to the closed set, falling back to IconDefault.
func NormalizeIcon(icon string) string {
	if subjectIcons[icon] {
		return icon
	}
	return IconDefault
}
