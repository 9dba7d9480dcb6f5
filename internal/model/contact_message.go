package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage 联系我们留言表 — 对应 contact_messages
type ContactMessage struct {
	MessageID string    `gorm:"type:uuid;primaryKey"                json:"message_id"`
	Email     string    `gorm:"type:varchar(255);not null"          json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null"          json:"subject"`
	Message   string    `gorm:"type:text;not null"                  json:"message"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`
}

// TableName 指定表名
func (ContactMessage) TableName() string { return "contact_messages" }

func (m *ContactMessage) BeforeCreate(*gorm.DB) error {
	ensureID(&m.MessageID)
	return nil
}
