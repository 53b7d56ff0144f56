package models

import "time"

// Score holds a member's accumulated ranking points. The rank label is
// not persisted; it is derived from the point total.
type Score struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Points    float64   `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// rankStep maps a minimum point total to a rank label. Steps are
// checked from highest to lowest.
type rankStep struct {
	min   float64
	label string
}

var rankLadder = []rankStep{
	{10000, "Legend"},
	{5000, "Grandmaster"},
	{2500, "Master"},
	{1000, "Veteran"},
	{500, "Regular"},
	{100, "Member"},
	{0, "Newcomer"},
}

// RankForPoints returns the rank label for a point total.
func RankForPoints(points float64) string {
	for _, step := range rankLadder {
		if points >= step.min {
			return step.label
		}
	}
	return rankLadder[len(rankLadder)-1].label
}
