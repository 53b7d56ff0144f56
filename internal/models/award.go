package models

import (
	"time"

	"gorm.io/gorm"
)

// Award is a site award that can be granted to members.
type Award struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ShortName   string         `gorm:"unique;not null" json:"short_name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserAward records a member winning an award in a given year.
type UserAward struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	AwardID   uint      `gorm:"not null;index" json:"award_id"`
	Award     Award     `gorm:"foreignKey:AwardID" json:"award"`
	Year      int       `gorm:"not null" json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// AwardSummary is the presentation shape of a won award.
type AwardSummary struct {
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// Summary flattens the join row for presentation.
func (ua *UserAward) Summary() AwardSummary {
	return AwardSummary{
		ShortName:   ua.Award.ShortName,
		Description: ua.Award.Description,
		Year:        ua.Year,
	}
}
