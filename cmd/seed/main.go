// Command seed fills the configured database with demo content.
package main

import (
	"flag"
	"fmt"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of demo users")
	flag.IntVar(&opts.Groups, "groups", opts.Groups, "number of groups")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "posts per user")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "comments per post")
	flag.IntVar(&opts.FollowsPerUser, "follows", opts.FollowsPerUser, "follow edges per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := seed.Run(db, opts); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Printf("seeded %d users (password %q), %d groups", opts.Users, seed.DemoPassword, opts.Groups)
	return nil
}
