package server

import (
	"testing"
	"time"

	"alcove/internal/config"
	"alcove/internal/database"
	"alcove/internal/featureflags"
	"alcove/internal/middleware"
	"alcove/internal/models"
	"alcove/internal/repository"
	"alcove/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key-for-handler-tests-only"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

// newTestServer builds a Server over an in-memory database without the
// metrics middleware, registering routes on a fresh app.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		Env:       "test",
	}
	middleware.InitMiddleware(cfg)

	db := setupTestDB(t)
	s := &Server{
		config:       cfg,
		db:           db,
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
		userRepo:     repository.NewUserRepository(db),
		postRepo:     repository.NewPostRepository(db),
		awardRepo:    repository.NewAwardRepository(db),
		scoreRepo:    repository.NewScoreRepository(db),
	}
	s.awardService = service.NewAwardService(s.awardRepo)
	s.pointsService = service.NewPointsService(s.scoreRepo)
	s.listingService = service.NewListingService(s.userRepo, s.postRepo, s.awardService, s.pointsService)
	s.userService = service.NewUserService(s.userRepo, s.awardService, s.pointsService)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// seedListingFixture creates an open and a restricted forum, one topic
// in each, a poster, and one post per topic.
func seedListingFixture(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	open := &models.Forum{Name: "General"}
	restricted := &models.Forum{Name: "Staff Room", Restricted: true}
	require.NoError(t, db.Create(open).Error)
	require.NoError(t, db.Create(restricted).Error)

	openTopic := &models.Topic{Title: "Welcome", ForumID: open.ID}
	staffTopic := &models.Topic{Title: "Staff notes", ForumID: restricted.ID}
	require.NoError(t, db.Create(openTopic).Error)
	require.NoError(t, db.Create(staffTopic).Error)

	poster := &models.User{Username: "maeve", Email: "maeve@example.com", Password: "x"}
	require.NoError(t, db.Create(poster).Error)

	now := time.Now()
	require.NoError(t, db.Create(&models.Post{
		Subject: "hello", Body: "b", TopicID: openTopic.ID, UserID: poster.ID,
		CreatedAt: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.Post{
		Subject: "internal", Body: "b", TopicID: staffTopic.ID, UserID: poster.ID,
		CreatedAt: now.Add(-2 * time.Hour),
	}).Error)

	return poster
}

// signedTokenFor issues a token for a user directly, bypassing the
// login handler.
func signedTokenFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user)
	require.NoError(t, err)
	return token
}
