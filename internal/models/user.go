// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a forum member.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	// MoodBase is the base path for the member's mood avatar set; the
	// per-post mood tag selects the variant.
	MoodBase  string `json:"mood_base"`
	Signature string `json:"signature"`
	Pronouns  string `json:"pronouns"`
	// BannedUntil is nil for members who were never banned. An expired
	// timestamp means the ban is no longer in effect.
	BannedUntil *time.Time `json:"banned_until,omitempty"`
	// Capabilities is the comma-separated capability list granted to
	// this member. Parsed with ParseCapabilities.
	Capabilities string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Posts        []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// CapabilitySet parses the member's granted capabilities.
func (u *User) CapabilitySet() CapabilitySet {
	return ParseCapabilities(u.Capabilities)
}

// IsBanned reports whether the member is banned at the given instant.
func (u *User) IsBanned(at time.Time) bool {
	return u.BannedUntil != nil && u.BannedUntil.After(at)
}
