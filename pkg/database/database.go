package database

import (
	"edupiyasa_backend/internal/config"
	"edupiyasa_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, runs the schema
// migrations and seeds the stock subject catalog. Release deployments skip
// migration unless forced from the command line.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Lesson{},
		&model.LessonProgress{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.Activity{},
		&model.ActivityAttempt{},
		&model.Assignment{},
		&model.Textbook{},
		&model.LearningPlan{},
		&model.EmotionalState{},
		&model.ParentalAlert{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaultSubjects(db)

	return db, nil
}

// seedDefaultSubjects inserts the stock subject catalog into an empty table so
// a fresh install has something to browse.
func seedDefaultSubjects(db *gorm.DB) {
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Subject{
		{Name: "Mathematics", NameSinhala: "ගණිතය", Description: "Numbers, geometry and problem solving", DescriptionSi: "සංඛ්‍යා, ජ්‍යාමිතිය සහ ගැටළු විසඳීම", Icon: "calculator", Color: "#4F8EF7", Grade: 10},
		{Name: "Science", NameSinhala: "විද්‍යාව", Description: "Explore the natural world", DescriptionSi: "ස්වාභාවික ලෝකය ගවේෂණය කරන්න", Icon: "flask", Color: "#34C759", Grade: 10},
		{Name: "English", NameSinhala: "ඉංග්‍රීසි", Description: "Reading, writing and grammar", DescriptionSi: "කියවීම, ලිවීම සහ ව්‍යාකරණ", Icon: "book", Color: "#FF9500", Grade: 10},
		{Name: "Sinhala", NameSinhala: "සිංහල", Description: "Language and literature", DescriptionSi: "භාෂාව සහ සාහිත්‍යය", Icon: "globe", Color: "#AF52DE", Grade: 10},
	}
	for _, s := range defaults {
		db.Create(&s)
	}
}
