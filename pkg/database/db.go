package database

import (
	"fmt"
	"log"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
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

	err = db.AutoMigrate(
		&model.User{},
		&model.TutorSession{},
		&model.Message{},
		&model.QuizQuestion{},
		&model.QuizProgress{},
		&model.LearningPath{},
		&model.LearningPathProgress{},
		&model.ProgressAnalytics{},
		&model.SubjectHistory{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认学习路径：课程目录不可用时的兜底数据
	var count int64
	db.Model(&model.LearningPath{}).Count(&count)
	if count == 0 {
		for _, p := range DefaultLearningPaths() {
			path := p
			db.Create(&path)
		}
	}

	return db, nil
}

// DefaultLearningPaths seeds the catalog-independent starter paths.
func DefaultLearningPaths() []model.LearningPath {
	return []model.LearningPath{
		{
			Title:          "Python Fundamentals",
			Description:    "Variables, control flow, functions and the standard library.",
			Difficulty:     model.DifficultyBeginner,
			Topics:         model.StringList{"Variables and Types", "Control Flow", "Functions", "Lists and Dictionaries", "File Handling"},
			EstimatedHours: 12,
		},
		{
			Title:          "Web Development Basics",
			Description:    "HTML, CSS and enough JavaScript to build interactive pages.",
			Difficulty:     model.DifficultyBeginner,
			Topics:         model.StringList{"HTML Structure", "CSS Styling", "JavaScript Basics", "DOM Manipulation"},
			EstimatedHours: 15,
		},
		{
			Title:          "Data Structures and Algorithms",
			Description:    "Core structures and the algorithms that operate on them.",
			Difficulty:     model.DifficultyIntermediate,
			Topics:         model.StringList{"Arrays and Strings", "Linked Lists", "Stacks and Queues", "Trees", "Graphs", "Sorting and Searching"},
			Prerequisites:  model.StringList{"Python Fundamentals"},
			EstimatedHours: 25,
		},
		{
			Title:          "Machine Learning Foundations",
			Description:    "Supervised learning, model evaluation and feature engineering.",
			Difficulty:     model.DifficultyAdvanced,
			Topics:         model.StringList{"Linear Regression", "Classification", "Model Evaluation", "Feature Engineering", "Neural Networks"},
			Prerequisites:  model.StringList{"Data Structures and Algorithms"},
			EstimatedHours: 30,
		},
	}
}
