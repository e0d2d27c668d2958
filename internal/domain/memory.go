package domain

import (
	"time"
)

// Memory represents one guestbook entry on a birthday page.
// Entries are append-only: never edited, never deleted.
type Memory struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BirthdayID string    `gorm:"column:birthday_id;type:varchar(36);index" json:"birthday_id"`
	Author     string    `gorm:"column:author;type:varchar(100)" json:"author"`
	Message    string    `gorm:"column:message;type:text" json:"message"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Memory model
func (Memory) TableName() string {
	return "memories"
}

// CreateMemoryRequest is the guestbook submission payload
type CreateMemoryRequest struct {
	Author  string `json:"author" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// MemoryResponse is the API response format for a memory entry
type MemoryResponse struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Memory to its API response format
func (m *Memory) ToResponse() *MemoryResponse {
	return &MemoryResponse{
		ID:        m.ID,
		Author:    m.Author,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
