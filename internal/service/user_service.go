package service

import (
	"context"
	"time"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/repository"
)

// Profile is the presentation shape of a member's profile page.
type Profile struct {
	ID        uint                  `json:"id"`
	Username  string                `json:"username"`
	Location  string                `json:"location"`
	Avatar    string                `json:"avatar"`
	MoodBase  string                `json:"mood_base"`
	Signature string                `json:"signature"`
	Pronouns  string                `json:"pronouns"`
	IsBanned  bool                  `json:"is_banned"`
	Awards    []models.AwardSummary `json:"awards"`
	Points    float64               `json:"points"`
	RankLabel string                `json:"rank_label"`
}

// UserService assembles member profiles.
type UserService struct {
	userRepo repository.UserRepository
	awards   AwardsLookup
	points   PointsLookup
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, awards AwardsLookup, points PointsLookup) *UserService {
	return &UserService{userRepo: userRepo, awards: awards, points: points, now: time.Now}
}

// GetProfile resolves a member by exact username and attaches their
// awards and points. Unknown usernames yield the not-found outcome.
func (s *UserService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	var profile Profile
	err := cache.Aside(ctx, cache.ProfileKey(username), &profile, cache.ProfileTTL, func() error {
		user, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}

		awards, err := s.awards.ForUser(ctx, user.ID)
		if err != nil {
			awards = []models.AwardSummary{}
		}
		points, rank, err := s.points.PlayerPoints(ctx, user.ID)
		if err != nil {
			points, rank = 0, ""
		}

		profile = Profile{
			ID:        user.ID,
			Username:  user.Username,
			Location:  user.Location,
			Avatar:    user.Avatar,
			MoodBase:  user.MoodBase,
			Signature: user.Signature,
			Pronouns:  user.Pronouns,
			IsBanned:  user.IsBanned(s.now()),
			Awards:    awards,
			Points:    points,
			RankLabel: rank,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
