package repository

import (
	"context"
	"time"

	"alcove/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// Listing queries return rows with Topic, Topic.Forum, and User loaded,
// together with the total count of the permission-filtered set.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// ByAuthor returns the author's posts, newest first. Posts in
	// restricted forums are excluded unless includeRestricted is set.
	ByAuthor(ctx context.Context, authorID uint, includeRestricted bool, limit, offset int) ([]*models.Post, int64, error)
	// Recent returns posts created at or after since, newest first,
	// with the same restricted-forum filtering as ByAuthor.
	Recent(ctx context.Context, since time.Time, includeRestricted bool, limit, offset int) ([]*models.Post, int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// visibleScope builds a fresh filtered query. A builder is used instead
// of a shared chain so Count and Find never reuse the same statement.
func (r *postRepository) visibleScope(ctx context.Context, includeRestricted bool) func() *gorm.DB {
	return func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Model(&models.Post{}).
			Joins("JOIN topics ON topics.id = posts.topic_id").
			Joins("JOIN forums ON forums.id = topics.forum_id")
		if !includeRestricted {
			q = q.Where("forums.restricted = ?", false)
		}
		return q
	}
}

func (r *postRepository) ByAuthor(ctx context.Context, authorID uint, includeRestricted bool, limit, offset int) ([]*models.Post, int64, error) {
	scope := r.visibleScope(ctx, includeRestricted)

	var total int64
	if err := scope().Where("posts.user_id = ?", authorID).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	err := scope().
		Select("posts.*").
		Where("posts.user_id = ?", authorID).
		Preload("User").
		Preload("Topic").
		Preload("Topic.Forum").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) Recent(ctx context.Context, since time.Time, includeRestricted bool, limit, offset int) ([]*models.Post, int64, error) {
	scope := r.visibleScope(ctx, includeRestricted)

	var total int64
	if err := scope().Where("posts.created_at >= ?", since).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	err := scope().
		Select("posts.*").
		Where("posts.created_at >= ?", since).
		Preload("User").
		Preload("Topic").
		Preload("Topic.Forum").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}
