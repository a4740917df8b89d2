// Command admin performs operator tasks that have no web UI, such as
// creating groups.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/admin create-group -title <title> -slug <slug> [-description <text>]")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}
	if flag.Arg(0) != "create-group" {
		return usage()
	}

	groupFlags := flag.NewFlagSet("create-group", flag.ExitOnError)
	title := groupFlags.String("title", "", "group title")
	slug := groupFlags.String("slug", "", "URL slug")
	description := groupFlags.String("description", "", "group description")
	if err := groupFlags.Parse(flag.Args()[1:]); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("-title is required")
	}
	if err := validation.ValidateGroupSlug(*slug); err != nil {
		return fmt.Errorf("invalid slug: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	groups := repository.NewGroupRepository(db)
	group := &models.Group{
		Title:       *title,
		Slug:        *slug,
		Description: *description,
	}
	if err := groups.Create(context.Background(), group); err != nil {
		return fmt.Errorf("create group: %w", err)
	}

	log.Printf("created group %q at /group/%s/", group.Title, group.Slug)
	return nil
}
