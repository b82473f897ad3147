package model

import (
	"time"
)

// ProgressAnalytics is a per-path daily rollup, appended on every topic
// completion. Multiple rows per path+day are allowed; consumers aggregate
// with SUM rather than assuming uniqueness.
type ProgressAnalytics struct {
	BaseModel
	UserID          uint      `gorm:"index" json:"userId"`
	PathID          string    `gorm:"index;type:varchar(36)" json:"pathId"`
	Date            time.Time `gorm:"type:date;index" json:"date"`
	TopicsCompleted int       `gorm:"default:0" json:"topicsCompleted"`
	MinutesSpent    float64   `gorm:"default:0" json:"minutesSpent"`
	QuizzesCorrect  int       `gorm:"default:0" json:"quizzesCorrect"`
	QuizzesTotal    int       `gorm:"default:0" json:"quizzesTotal"`
}

func (ProgressAnalytics) TableName() string {
	return "progress_analytics"
}

// SubjectHistory is an append-only log of subjects a user has explored,
// used for recommendation personalization.
type SubjectHistory struct {
	BaseModel
	UserID  uint   `gorm:"index" json:"userId"`
	Subject string `gorm:"size:255;not null" json:"subject"`
}

func (SubjectHistory) TableName() string {
	return "subject_history"
}
