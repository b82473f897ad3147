package model

// QuizQuestion is generated fresh for every quiz request and persisted
// so the answer can be graded later. Questions are never reused.
type QuizQuestion struct {
	BaseModel
	Subject  string `gorm:"size:255;index" json:"subject"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"-"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizProgress is an append-only log of answer attempts.
type QuizProgress struct {
	BaseModel
	UserID     uint   `gorm:"index" json:"userId"`
	QuestionID uint   `gorm:"index" json:"questionId"`
	Subject    string `gorm:"size:255;index" json:"subject"`
	UserAnswer string `gorm:"type:text" json:"userAnswer"`
	Correct    bool   `gorm:"default:false" json:"correct"`
}

func (QuizProgress) TableName() string {
	return "quiz_progress"
}
