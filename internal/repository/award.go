package repository

import (
	"context"

	"alcove/internal/cache"
	"alcove/internal/models"

	"gorm.io/gorm"
)

// AwardRepository defines persistence operations for site awards.
type AwardRepository interface {
	CreateAward(ctx context.Context, award *models.Award) error
	// ForUser returns the member's won awards with Award loaded, most
	// recent year first. A member with no awards gets an empty slice.
	ForUser(ctx context.Context, userID uint) ([]models.UserAward, error)
	Grant(ctx context.Context, userID, awardID uint, year int) error
}

type awardRepository struct {
	db *gorm.DB
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) CreateAward(ctx context.Context, award *models.Award) error {
	return r.db.WithContext(ctx).Create(award).Error
}

func (r *awardRepository) ForUser(ctx context.Context, userID uint) ([]models.UserAward, error) {
	var won []models.UserAward
	err := r.db.WithContext(ctx).
		Preload("Award").
		Where("user_id = ?", userID).
		Order("year DESC, id DESC").
		Find(&won).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return won, nil
}

func (r *awardRepository) Grant(ctx context.Context, userID, awardID uint, year int) error {
	ua := models.UserAward{UserID: userID, AwardID: awardID, Year: year}
	if err := r.db.WithContext(ctx).Create(&ua).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUserLookups(ctx, userID)
	return nil
}
