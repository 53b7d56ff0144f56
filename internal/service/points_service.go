package service

import (
	"context"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/repository"
)

// PointsService resolves a member's ranking points and rank label.
type PointsService struct {
	scoreRepo repository.ScoreRepository
}

func NewPointsService(scoreRepo repository.ScoreRepository) *PointsService {
	return &PointsService{scoreRepo: scoreRepo}
}

type cachedPoints struct {
	Points float64 `json:"points"`
	Rank   string  `json:"rank"`
}

// PlayerPoints returns the member's point total and rank label. A
// member with no recorded score gets zero points and an empty label.
func (s *PointsService) PlayerPoints(ctx context.Context, userID uint) (float64, string, error) {
	var entry cachedPoints
	err := cache.Aside(ctx, cache.PointsKey(userID), &entry, cache.PointsTTL, func() error {
		score, err := s.scoreRepo.ForUser(ctx, userID)
		if err != nil {
			return err
		}
		if score == nil {
			entry = cachedPoints{}
			return nil
		}
		entry = cachedPoints{Points: score.Points, Rank: models.RankForPoints(score.Points)}
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return entry.Points, entry.Rank, nil
}
