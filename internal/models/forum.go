package models

import (
	"time"

	"gorm.io/gorm"
)

// Forum is a top-level board grouping topics.
type Forum struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Restricted forums require the see-restricted-forums capability to
	// view; their posts never leak into aggregated listings otherwise.
	Restricted bool           `gorm:"not null;default:false" json:"restricted"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Topics     []Topic        `gorm:"foreignKey:ForumID" json:"topics,omitempty"`
}

// Topic is a thread of posts inside a forum.
type Topic struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	// Locked topics cannot be edited by their post authors; moderators
	// with edit-any-post remain unaffected.
	Locked    bool           `gorm:"not null;default:false" json:"locked"`
	ForumID   uint           `gorm:"not null;index" json:"forum_id"`
	Forum     Forum          `gorm:"foreignKey:ForumID" json:"forum"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:TopicID" json:"posts,omitempty"`
}
