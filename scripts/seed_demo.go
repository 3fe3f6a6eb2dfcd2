// Demo data seeder for local development.
//
// Inserts a teacher account, sample lessons, a quiz and a matching activity
// so the portal has something to show on first run. Safe to re-run: rows are
// looked up by title/email before insert.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"edupiyasa_backend/internal/config"
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/pkg/database"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	seedTeacher(db)
	seedLessons(db)
	seedQuiz(db)
	seedActivity(db)

	log.Println("demo data seeded")
}

func seedTeacher(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("email = ?", "teacher@edupiyasa.lk").Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("teach1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	db.Create(&model.User{
		FullName: "Demo Teacher",
		Email:    "teacher@edupiyasa.lk",
		Password: string(hash),
		Role:     model.Teacher,
		Language: model.LanguageEnglish,
	})
}

func seedLessons(db *gorm.DB) {
	var subject model.Subject
	if err := db.Where("name = ?", "Mathematics").First(&subject).Error; err != nil {
		log.Printf("mathematics subject missing, skipping lessons: %v", err)
		return
	}

	lessons := []model.Lesson{
		{
			SubjectID:    subject.ID,
			Title:        "Counting to 100",
			TitleSinhala: "100 දක්වා ගණන් කිරීම",
			Content:      "# Counting\nStart from 1 and count up in tens.",
			OrderIndex:   1,
		},
		{
			SubjectID:    subject.ID,
			Title:        "Addition Basics",
			TitleSinhala: "එකතු කිරීමේ මූලික කරුණු",
			Content:      "# Addition\nCombine two groups and count the total.",
			OrderIndex:   2,
		},
	}
	for _, lesson := range lessons {
		var count int64
		db.Model(&model.Lesson{}).Where("title = ?", lesson.Title).Count(&count)
		if count == 0 {
			db.Create(&lesson)
		}
	}
}

func seedQuiz(db *gorm.DB) {
	var count int64
	db.Model(&model.Quiz{}).Where("title = ?", "Numbers Quiz").Count(&count)
	if count > 0 {
		return
	}

	quiz := model.Quiz{
		Title:             "Numbers Quiz",
		TitleSinhala:      "සංඛ්‍යා ප්‍රශ්නාවලිය",
		TimeLimit:         120,
		PointsPerQuestion: 10,
	}
	if err := db.Create(&quiz).Error; err != nil {
		log.Fatalf("seed quiz: %v", err)
	}

	db.Create(&model.QuizQuestion{
		QuizID:        quiz.ID,
		Question:      "What is 2 + 3?",
		QuestionSi:    "2 + 3 කීයද?",
		OptionAText:   "4",
		OptionBText:   "5",
		OptionCText:   "6",
		OptionDText:   "7",
		CorrectAnswer: model.OptionB,
		OrderIndex:    1,
	})
	db.Create(&model.QuizQuestion{
		QuizID:        quiz.ID,
		Question:      "What is 10 - 4?",
		QuestionSi:    "10 - 4 කීයද?",
		OptionAText:   "5",
		OptionBText:   "7",
		OptionCText:   "6",
		OptionDText:   "8",
		CorrectAnswer: model.OptionC,
		OrderIndex:    2,
	})
}

func seedActivity(db *gorm.DB) {
	var count int64
	db.Model(&model.Activity{}).Where("title = ?", "Match the Animals").Count(&count)
	if count > 0 {
		return
	}

	db.Create(&model.Activity{
		Title:        "Match the Animals",
		TitleSinhala: "සතුන් ගලපන්න",
		Grade:        1,
		ActivityType: "matching",
		Points:       50,
		Pairs: model.MatchPairList{
			{Left: "Dog", LeftSi: "බල්ලා", Right: "Puppy", RightSi: "බලු පැටියා"},
			{Left: "Cat", LeftSi: "පූසා", Right: "Kitten", RightSi: "පූස් පැටියා"},
			{Left: "Cow", LeftSi: "එළදෙන", Right: "Calf", RightSi: "වසු පැටියා"},
		},
	})
}
