package model

// Teaching media offered for textbooks.
const (
	MediumSinhala = "Sinhala"
	MediumEnglish = "English"
	MediumTamil   = "Tamil"
)

// swagger:model Textbook
type Textbook struct {
	BaseModel
	SubjectID     *uint    `gorm:"index" json:"subjectId,omitempty"`
	Subject       *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title         string   `gorm:"size:200;not null" json:"title"`
	TitleSinhala  string   `gorm:"size:200" json:"titleSi"`
	Description   string   `gorm:"size:500" json:"description"`
	DescriptionSi string   `gorm:"size:500" json:"descriptionSi"`
	Grade         int      `gorm:"index;not null" json:"grade"`
	Medium        string   `gorm:"size:20;not null" json:"medium"`
	PDFURL        string   `gorm:"size:255" json:"pdfUrl"`
	CoverImageURL string   `gorm:"size:255" json:"coverImageUrl,omitempty"`
	FileSize      string   `gorm:"size:20" json:"fileSize,omitempty"` // display label, e.g. "12.4 MB"
}

func (Textbook) TableName() string {
	return "textbooks"
}
