package service

import (
	"context"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/repository"
)

// AwardService resolves the awards a member has won.
type AwardService struct {
	awardRepo repository.AwardRepository
}

func NewAwardService(awardRepo repository.AwardRepository) *AwardService {
	return &AwardService{awardRepo: awardRepo}
}

// ForUser returns the member's award summaries, most recent year first.
// Results are cached per member; a member with no awards yields an
// empty slice, never an error.
func (s *AwardService) ForUser(ctx context.Context, userID uint) ([]models.AwardSummary, error) {
	var summaries []models.AwardSummary
	err := cache.Aside(ctx, cache.AwardsKey(userID), &summaries, cache.AwardsTTL, func() error {
		won, err := s.awardRepo.ForUser(ctx, userID)
		if err != nil {
			return err
		}
		summaries = make([]models.AwardSummary, 0, len(won))
		for i := range won {
			summaries = append(summaries, won[i].Summary())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.AwardSummary{}
	}
	return summaries, nil
}
