package models

import (
	"time"
)

// MaxMessageLength bounds the text of a single warble.
const MaxMessageLength = 140

// Message is a short text post ("warble") owned by exactly one user.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
}
