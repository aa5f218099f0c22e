package database

import (
	"fmt"
	"log"

	"twigane_backend/internal/config"
	"twigane_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
		&model.Course{},
		&model.Lesson{},
		&model.LessonProgress{},
		&model.Achievement{},
		&model.Checkin{},
		&model.Project{},
		&model.Post{},
		&model.Reply{},
		&model.PostLike{},
		&model.ChatSession{},
		&model.ChatMessage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalog(db)

	return db, nil
}

// seedCatalog inserts a starter course when the catalog is empty so a fresh
// install has something to show.
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return
	}

	course := &model.Course{
		Title:       "Web Basics: HTML, CSS & JavaScript",
		Description: "Master the fundamentals of web development from scratch. Learn HTML structure, CSS styling, and JavaScript interactivity to build your first websites.",
		Category:    "web",
		Difficulty:  model.Beginner,
		Published:   true,
	}
	if err := db.Create(course).Error; err != nil {
		log.Printf("seed course failed: %v", err)
		return
	}

	lessons := []model.Lesson{
		{
			CourseID:        course.ID,
			Title:           "Introduction to HTML",
			Content:         "HTML gives a page its structure. Every element is a tag, and tags nest to form the document tree.",
			Position:        0,
			DurationMinutes: 15,
			QuizQuestion:    "What does HTML stand for?",
			QuizOptions:     `["HyperText Markup Language","Home Tool Markup Language","Hyperlinks and Text Markup Language"]`,
			QuizCorrect:     0,
		},
		{
			CourseID:        course.ID,
			Title:           "HTML Document Structure",
			Content:         "A valid document starts with a doctype, then html, head and body elements.",
			Position:        1,
			DurationMinutes: 20,
			CodeTemplate:    "<!DOCTYPE html>\n<html>\n  <head>\n    <title>My Page</title>\n  </head>\n  <body>\n  </body>\n</html>",
		},
		{
			CourseID:        course.ID,
			Title:           "CSS Basics and Selectors",
			Content:         "CSS targets elements with selectors and applies property/value pairs.",
			Position:        2,
			DurationMinutes: 20,
			QuizQuestion:    "Which selector targets an element with id=\"main\"?",
			QuizOptions:     `[".main","#main","main()"]`,
			QuizCorrect:     1,
		},
		{
			CourseID:        course.ID,
			Title:           "Variables and Data Types",
			Content:         "JavaScript variables are declared with let and const. Avoid var.",
			Position:        3,
			DurationMinutes: 25,
			CodeTemplate:    "let name = \"Twigane\";\nconst year = 2024;\nconsole.log(`Hello, ${name}!`);",
			ExpectedOutput:  "Hello, Twigane!",
		},
	}
	for i := range lessons {
		if err := db.Create(&lessons[i]).Error; err != nil {
			log.Printf("seed lesson failed: %v", err)
		}
	}
}
