// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

const maxPostLen = 10000

// PostService provides post CRUD and listing logic.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	Image    string
}

// UpdatePostInput carries an edit to an existing post.
type UpdatePostInput struct {
	AuthorID uint
	PostID   uint
	Text     string
	GroupID  *uint
	// Image replaces the stored attachment when non-empty.
	Image string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

func (s *PostService) validateText(text string) error {
	if text == "" {
		return models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return models.NewValidationError("Text too long (max 10000 characters)")
	}
	return nil
}

func (s *PostService) resolveGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if models.IsNotFound(err) {
			return models.NewValidationError("Unknown group")
		}
		return err
	}
	return nil
}

// CreatePost validates the input, stamps the author, and persists a new post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}
	if err := s.resolveGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		Image:    in.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with its author and group resolved.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies an edit. Only the post's author may edit it; the
// creation timestamp and authorship are never touched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.AuthorID {
		return nil, models.NewUnauthorizedError("Only the author can edit this post")
	}

	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}
	if err := s.resolveGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// ListPage returns one page of all posts, newest-first.
func (s *PostService) ListPage(ctx context.Context, pageParam string) ([]*models.Post, pagination.Page, error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.Paginate(int(total), pageParam, pagination.DefaultPerPage)
	posts, err := s.postRepo.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}

// GroupPage returns one page of a group's posts, newest-first.
func (s *PostService) GroupPage(ctx context.Context, groupID uint, pageParam string) ([]*models.Post, pagination.Page, error) {
	total, err := s.postRepo.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.Paginate(int(total), pageParam, pagination.DefaultPerPage)
	posts, err := s.postRepo.ListByGroup(ctx, groupID, page.Limit(), page.Offset())
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}

// AuthorPage returns one page of an author's posts, newest-first.
func (s *PostService) AuthorPage(ctx context.Context, authorID uint, pageParam string) ([]*models.Post, pagination.Page, error) {
	total, err := s.postRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.Paginate(int(total), pageParam, pagination.DefaultPerPage)
	posts, err := s.postRepo.ListByAuthor(ctx, authorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}
