// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"alcove/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateForum persists a forum. Optional override functions may modify
// the generated forum before saving.
func (f *Factory) CreateForum(overrides ...func(*models.Forum)) (*models.Forum, error) {
	forum := &models.Forum{
		Name:        gofakeit.HackerNoun() + " " + gofakeit.BuzzWord(),
		Description: gofakeit.Sentence(8),
	}
	for _, override := range overrides {
		override(forum)
	}
	if err := f.db.Create(forum).Error; err != nil {
		return nil, fmt.Errorf("failed to create forum: %w", err)
	}
	return forum, nil
}

// CreateTopic persists a topic inside the given forum.
func (f *Factory) CreateTopic(forum *models.Forum, overrides ...func(*models.Topic)) (*models.Topic, error) {
	topic := &models.Topic{
		Title:   gofakeit.Sentence(5),
		ForumID: forum.ID,
	}
	for _, override := range overrides {
		override(topic)
	}
	if err := f.db.Create(topic).Error; err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return topic, nil
}

// CreateUser constructs and persists a sample `models.User`.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("SeededPass12!@"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:        gofakeit.Email(),
		Password:     string(hash),
		Location:     gofakeit.City(),
		Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		MoodBase:     gofakeit.RandomString([]string{"sunny", "stormy", "chill", "fired-up"}),
		Signature:    gofakeit.Quote(),
		Pronouns:     gofakeit.RandomString([]string{"she/her", "he/him", "they/them", ""}),
		Capabilities: string(models.CapEditOwnPosts),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// BuildPost constructs a post with a realistic created_at spread over
// the past maxDays but does not persist it. Useful for batching.
func (f *Factory) BuildPost(user *models.User, topic *models.Topic, maxDays int, overrides ...func(*models.Post)) *models.Post {
	if maxDays <= 0 {
		maxDays = 10
	}

	post := &models.Post{
		Subject:      gofakeit.Sentence(5),
		Body:         gofakeit.Paragraph(1, 3, 5, "\n"),
		Mood:         gofakeit.RandomString([]string{"", "happy", "grumpy", "nostalgic"}),
		EnableMarkup: true,
		TopicID:      topic.ID,
		UserID:       user.ID,
	}

	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateAward persists an award definition.
func (f *Factory) CreateAward(shortName, description string) (*models.Award, error) {
	award := &models.Award{ShortName: shortName, Description: description}
	if err := f.db.Create(award).Error; err != nil {
		return nil, fmt.Errorf("failed to create award %q: %w", shortName, err)
	}
	return award, nil
}

// GrantAward records that a user won an award in a given year.
func (f *Factory) GrantAward(user *models.User, award *models.Award, year int) error {
	return f.db.Create(&models.UserAward{
		UserID:  user.ID,
		AwardID: award.ID,
		Year:    year,
	}).Error
}

// SetScore writes a user's point total.
func (f *Factory) SetScore(user *models.User, points float64) error {
	return f.db.Create(&models.Score{UserID: user.ID, Points: points}).Error
}
