package seed

import (
	"fmt"
	"log"
	"time"

	"alcove/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxDays     int
	ShouldClean bool
}

// standard award catalog seeded once
var awardCatalog = []struct {
	ShortName   string
	Description string
}{
	{"poty", "Poster of the year"},
	{"helper", "Most helpful member"},
	{"lurker", "Longest lurk before first post"},
	{"night-owl", "Most posts after midnight"},
}

// Seed populates the database with demo forums, topics, users, posts,
// awards, and scores so the listing surface is exercisable end to end.
// A share of the forums is restricted, a share of the topics is locked,
// and a share of the users is banned.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	forums, topics, err := createBoard(factory)
	if err != nil {
		return fmt.Errorf("failed to create forums: %w", err)
	}
	log.Printf("%d forums with %d topics created", len(forums), len(topics))

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	if err := createPosts(factory, users, topics, opts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", opts.NumPosts)

	if err := grantAwardsAndScores(factory, users); err != nil {
		return fmt.Errorf("failed to grant awards: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// createBoard builds a small forum structure: open forums, one
// restricted forum, and a handful of topics per forum with the first
// topic of each forum locked.
func createBoard(f *Factory) ([]*models.Forum, []*models.Topic, error) {
	var forums []*models.Forum
	var topics []*models.Topic

	names := []string{"General", "Technology", "Music"}
	for _, name := range names {
		forum, err := f.CreateForum(func(fm *models.Forum) { fm.Name = name })
		if err != nil {
			return nil, nil, err
		}
		forums = append(forums, forum)
	}

	staff, err := f.CreateForum(func(fm *models.Forum) {
		fm.Name = "Staff Room"
		fm.Restricted = true
	})
	if err != nil {
		return nil, nil, err
	}
	forums = append(forums, staff)

	for _, forum := range forums {
		for i := 0; i < 3; i++ {
			locked := i == 0
			topic, err := f.CreateTopic(forum, func(tp *models.Topic) { tp.Locked = locked })
			if err != nil {
				return nil, nil, err
			}
			topics = append(topics, topic)
		}
	}

	return forums, topics, nil
}

// createUsers builds the member base. Every fifth user gets moderator
// capabilities and every seventh is banned for two more days.
func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		idx := i
		user, err := f.CreateUser(func(u *models.User) {
			if idx%5 == 0 {
				u.Capabilities = "edit_own_posts,see_restricted_forums,edit_any_post,delete_posts"
			}
			if idx%7 == 0 {
				until := f.rng.Intn(48)
				banned := nowPlusHours(until + 24)
				u.BannedUntil = &banned
			}
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(f *Factory, users []*models.User, topics []*models.Topic, opts Options) error {
	if len(users) == 0 || len(topics) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		user := users[f.rng.Intn(len(users))]
		topic := topics[f.rng.Intn(len(topics))]
		posts = append(posts, f.BuildPost(user, topic, opts.MaxDays))
	}
	return f.CreatePostsBatch(posts)
}

func grantAwardsAndScores(f *Factory, users []*models.User) error {
	awards := make([]*models.Award, 0, len(awardCatalog))
	for _, def := range awardCatalog {
		award, err := f.CreateAward(def.ShortName, def.Description)
		if err != nil {
			return err
		}
		awards = append(awards, award)
	}

	for i, user := range users {
		if err := f.SetScore(user, float64(f.rng.Intn(12000))); err != nil {
			return err
		}
		// roughly a third of members hold at least one award
		if i%3 == 0 {
			award := awards[f.rng.Intn(len(awards))]
			year := 2020 + f.rng.Intn(6)
			if err := f.GrantAward(user, award, year); err != nil {
				return err
			}
		}
	}
	return nil
}

func nowPlusHours(h int) time.Time {
	return time.Now().Add(time.Duration(h) * time.Hour)
}

func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.UserAward{}, &models.Award{}, &models.Score{},
		&models.Post{}, &models.Topic{}, &models.Forum{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
