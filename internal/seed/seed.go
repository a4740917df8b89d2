// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DemoPassword is the password every seeded account logs in with.
const DemoPassword = "quillpass1"

// Options controls the volume and spread of seeded data.
type Options struct {
	Users           int
	Groups          int
	PostsPerUser    int
	CommentsPerPost int
	FollowsPerUser  int
	// MaxDays bounds how far back post timestamps are spread.
	MaxDays int
}

// DefaultOptions returns a small but lively demo dataset.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		Groups:          4,
		PostsPerUser:    6,
		CommentsPerPost: 2,
		FollowsPerUser:  3,
		MaxDays:         90,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// CreateUser persists a demo user with the shared demo password.
func (f *Factory) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(gofakeit.Username())
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password: string(hash),
		Bio:      gofakeit.Sentence(8),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup persists a group with a slug derived from its title.
func (f *Factory) CreateGroup() (*models.Group, error) {
	noun := strings.ToLower(gofakeit.NounAbstract())
	group := &models.Group{
		Title:       strings.ToUpper(noun[:1]) + noun[1:],
		Slug:        fmt.Sprintf("%s-%d", noun, f.rng.Intn(1000)),
		Description: gofakeit.Sentence(12),
	}
	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost persists a post by the user, optionally in the group, with its
// timestamp spread back over the configured window.
func (f *Factory) CreatePost(user *models.User, group *models.Group) (*models.Post, error) {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID: user.ID,
		CreatedAt: time.Now().
			Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
			Add(-time.Duration(f.rng.Intn(24*60)) * time.Minute),
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by the user on the post, timestamped
// after the post itself.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:      gofakeit.Sentence(10),
		AuthorID:  user.ID,
		PostID:    post.ID,
		CreatedAt: post.CreatedAt.Add(time.Duration(1+f.rng.Intn(600)) * time.Minute),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge; duplicates are silently skipped.
func (f *Factory) CreateFollow(user, author *models.User) error {
	if user.ID == author.ID {
		return nil
	}
	return f.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error
}
