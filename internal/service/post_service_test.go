package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	listFn          func(context.Context, int, int) ([]*models.Post, error)
	countFn         func(context.Context) (int64, error)
	listByGroupFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	countByGroupFn  func(context.Context, uint) (int64, error)
	listByAuthorFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	listFollowedFn  func(context.Context, uint, int, int) ([]*models.Post, error)
	countFollowedFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListFollowed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFollowedFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) CountFollowed(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowedFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		countFn:         func(_ context.Context) (int64, error) { return 0, nil },
		listByGroupFn:   func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		countByGroupFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listByAuthorFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listFollowedFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		countFollowedFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// groupRepoStub is a stub for repository.GroupRepository.
type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getByIDFn   func(context.Context, uint) (*models.Group, error)
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context) ([]models.Group, error)
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context) ([]models.Group, error) {
	return s.listFn(ctx)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn:    func(_ context.Context, _ *models.Group) error { return nil },
		getByIDFn:   func(_ context.Context, id uint) (*models.Group, error) { return &models.Group{ID: id}, nil },
		getBySlugFn: func(_ context.Context, slug string) (*models.Group, error) { return &models.Group{Slug: slug}, nil },
		listFn:      func(_ context.Context) ([]models.Group, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopGroupRepo())
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{
			AuthorID: 1,
			Text:     strings.Repeat("x", maxPostLen+1),
		})
		assertValidationError(t, err)
	})

	t.Run("unknown group", func(t *testing.T) {
		t.Parallel()
		groupRepo := noopGroupRepo()
		groupRepo.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", id)
		}
		svc2 := NewPostService(noopPostRepo(), groupRepo)
		groupID := uint(99)
		_, err := svc2.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "hi", GroupID: &groupID})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_Success(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Text: "hello", AuthorID: 1}, nil
	}

	svc := NewPostService(postRepo, noopGroupRepo())
	post, err := svc.CreatePost(context.Background(), CreatePostInput{AuthorID: 1, Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), post.ID)
	assert.Equal(t, "hello", post.Text)
}

func TestPostService_UpdatePost_Authorship(t *testing.T) {
	t.Parallel()

	t.Run("non-author cannot edit", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, AuthorID: 10}, nil
		}
		svc := NewPostService(postRepo, noopGroupRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{AuthorID: 1, PostID: 1, Text: "new"})
		assertUnauthorizedError(t, err)
	})

	t.Run("author can edit text and group", func(t *testing.T) {
		t.Parallel()
		storedText := "old"
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, AuthorID: 1, Text: storedText}, nil
		}
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			storedText = p.Text
			return nil
		}
		svc := NewPostService(postRepo, noopGroupRepo())
		post, err := svc.UpdatePost(context.Background(), UpdatePostInput{AuthorID: 1, PostID: 1, Text: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", post.Text)
	})

	t.Run("missing post propagates not found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewPostService(postRepo, noopGroupRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{AuthorID: 1, PostID: 404, Text: "new"})
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestPostService_ListPage_UsesClampedWindow(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	postRepo := noopPostRepo()
	postRepo.countFn = func(_ context.Context) (int64, error) { return 25, nil }
	postRepo.listFn = func(_ context.Context, limit, offset int) ([]*models.Post, error) {
		gotLimit, gotOffset = limit, offset
		return []*models.Post{{ID: 1}}, nil
	}

	svc := NewPostService(postRepo, noopGroupRepo())

	// Page 99 of 25 items clamps to the last page (3): offset 20.
	_, page, err := svc.ListPage(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
}
