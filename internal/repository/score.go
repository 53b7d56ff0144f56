package repository

import (
	"context"
	"errors"

	"alcove/internal/cache"
	"alcove/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreRepository defines persistence operations for ranking points.
type ScoreRepository interface {
	// ForUser returns the member's score row, or (nil, nil) when no
	// points were ever recorded for them.
	ForUser(ctx context.Context, userID uint) (*models.Score, error)
	AddPoints(ctx context.Context, userID uint, delta float64) error
}

type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) ForUser(ctx context.Context, userID uint) (*models.Score, error) {
	var score models.Score
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &score, nil
}

func (r *scoreRepository) AddPoints(ctx context.Context, userID uint, delta float64) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"points": gorm.Expr("scores.points + ?", delta)}),
		}).
		Create(&models.Score{UserID: userID, Points: delta}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PointsKey(userID))
	return nil
}
