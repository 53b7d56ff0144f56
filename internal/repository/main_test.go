package repository

import (
	"testing"
	"time"

	"alcove/internal/database"
	"alcove/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// seedForumPair creates one open and one restricted forum, each with a
// single topic, and returns the two topics.
func seedForumPair(t *testing.T, db *gorm.DB) (open, restricted models.Topic) {
	t.Helper()

	openForum := models.Forum{Name: "General"}
	restrictedForum := models.Forum{Name: "Staff Room", Restricted: true}
	if err := db.Create(&openForum).Error; err != nil {
		t.Fatalf("create forum: %v", err)
	}
	if err := db.Create(&restrictedForum).Error; err != nil {
		t.Fatalf("create forum: %v", err)
	}

	open = models.Topic{Title: "Open topic", ForumID: openForum.ID}
	restricted = models.Topic{Title: "Hidden topic", ForumID: restrictedForum.ID}
	if err := db.Create(&open).Error; err != nil {
		t.Fatalf("create topic: %v", err)
	}
	if err := db.Create(&restricted).Error; err != nil {
		t.Fatalf("create topic: %v", err)
	}
	return open, restricted
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, user *models.User, topic models.Topic, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Subject:   "subject",
		Body:      "body",
		TopicID:   topic.ID,
		UserID:    user.ID,
		CreatedAt: createdAt,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
