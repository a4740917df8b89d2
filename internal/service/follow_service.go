package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

// FollowService provides subscription logic and the followed-authors feed.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, postRepo repository.PostRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// Follow subscribes the user to the named author. Following yourself is
// rejected; following someone you already follow is a no-op. The self check
// compares username strings, which is sound because usernames are unique.
func (s *FollowService) Follow(ctx context.Context, user *models.User, authorUsername string) error {
	if user.Username == authorUsername {
		return models.NewValidationError("You cannot follow yourself")
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Create(ctx, &models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	})
}

// Unfollow removes the subscription; unfollowing someone you don't follow is
// a no-op.
func (s *FollowService) Unfollow(ctx context.Context, user *models.User, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, user.ID, author.ID)
}

// IsFollowing reports whether user follows the given author.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

// FeedPage returns one page of posts from the authors the user follows,
// newest-first.
func (s *FollowService) FeedPage(ctx context.Context, userID uint, pageParam string) ([]*models.Post, pagination.Page, error) {
	total, err := s.postRepo.CountFollowed(ctx, userID)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page := pagination.Paginate(int(total), pageParam, pagination.DefaultPerPage)
	posts, err := s.postRepo.ListFollowed(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}
