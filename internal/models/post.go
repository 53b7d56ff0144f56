package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a single forum post inside a topic.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Subject string `gorm:"not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
	// Mood selects the poster's mood avatar variant for this post.
	Mood         string `json:"mood"`
	EnableHTML   bool   `gorm:"not null;default:false" json:"enable_html"`
	EnableMarkup bool   `gorm:"not null;default:true" json:"enable_markup"`
	TopicID      uint      `gorm:"not null;index" json:"topic_id"`
	Topic        Topic     `gorm:"foreignKey:TopicID" json:"topic"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	// EditedAt is set when a member edits the post after submission.
	EditedAt  *time.Time     `json:"edited_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
