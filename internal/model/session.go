package model

// TutorSession groups one user's conversation around a subject.
type TutorSession struct {
	UUIDBase
	UserID  uint   `gorm:"index" json:"userId"`
	Subject string `gorm:"size:255" json:"subject"`
}

func (TutorSession) TableName() string {
	return "tutor_sessions"
}

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// swagger:model Message
type Message struct {
	BaseModel
	UserID    uint        `gorm:"index" json:"userId"`
	SessionID string      `gorm:"index;type:varchar(36)" json:"sessionId"`
	Subject   string      `gorm:"size:255;index" json:"subject"`
	Role      MessageRole `gorm:"type:enum('user','assistant');default:'user'" json:"role"`
	Content   string      `gorm:"type:longtext" json:"content"`
}

func (Message) TableName() string {
	return "messages"
}
