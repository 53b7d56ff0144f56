// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"alcove/internal/bootstrap"
	"alcove/internal/config"
	"alcove/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	maxDays := flag.Int("max-days", 10, "Spread post creation times over this many days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Path to a YAML seeding preset (overrides other flags)")
	flag.Parse()

	opts := seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		MaxDays:     *maxDays,
		ShouldClean: *shouldClean,
	}

	if *preset != "" {
		loaded, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		opts = loaded
		log.Printf("Applying preset %s: %d users, %d posts", *preset, opts.NumUsers, opts.NumPosts)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{
		SeedDemoData: true,
		SeedOptions:  opts,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
