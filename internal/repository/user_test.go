package repository

import (
	"context"
	"errors"
	"testing"

	"alcove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Maeve")

	t.Run("exact match", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "Maeve")
		require.NoError(t, err)
		assert.Equal(t, "Maeve", user.Username)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "maeve")
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserRepository_GetByEmail_MissingIsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
