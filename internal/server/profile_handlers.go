package server

import (
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

type profilePageData struct {
	basePageData
	Profile   *models.User
	Posts     []*models.Post
	Page      pagination.Page
	PostCount int64
	IsSelf    bool
	Following bool
}

// Profile renders an author's page with their paginated posts. Authenticated
// viewers get a follow/unfollow control unless they are looking at themselves.
func (s *Server) Profile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.UserContext(), c.Params("username"))
	if err != nil {
		return s.renderError(c, err)
	}

	posts, page, err := s.postService.AuthorPage(c.UserContext(), profile.ID, c.Query("page"))
	if err != nil {
		return err
	}

	viewerID := middleware.CurrentUserID(c)
	isSelf := viewerID != 0 && viewerID == profile.ID

	following := false
	if viewerID != 0 && !isSelf {
		following, err = s.followService.IsFollowing(c.UserContext(), viewerID, profile.ID)
		if err != nil {
			return err
		}
	}

	return c.Render("profile", profilePageData{
		basePageData: s.basePage(c),
		Profile:      profile,
		Posts:        posts,
		Page:         page,
		PostCount:    int64(page.TotalItems),
		IsSelf:       isSelf,
		Following:    following,
	})
}

// FollowIndex renders the viewer's feed: posts by every author they follow.
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	posts, page, err := s.followService.FeedPage(c.UserContext(), middleware.CurrentUserID(c), c.Query("page"))
	if err != nil {
		return err
	}
	return c.Render("follow", postListData{
		basePageData: s.basePage(c),
		Posts:        posts,
		Page:         page,
	})
}

// viewer materializes the authenticated user from request locals for the
// follow service's username-based self check.
func (s *Server) viewer(c *fiber.Ctx) *models.User {
	return &models.User{
		ID:       middleware.CurrentUserID(c),
		Username: middleware.CurrentUsername(c),
	}
}

// ProfileFollow subscribes the viewer to the profile's author and bounces
// back to the profile. Following yourself or someone you already follow is a
// silent no-op.
func (s *Server) ProfileFollow(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Follow(c.UserContext(), s.viewer(c), username); err != nil {
		// The self-follow rejection stays invisible: the original flow just
		// lands back on the profile.
		if !models.IsValidation(err) {
			return s.renderError(c, err)
		}
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}

// ProfileUnfollow removes the subscription and bounces back to the profile.
func (s *Server) ProfileUnfollow(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Unfollow(c.UserContext(), s.viewer(c), username); err != nil {
		return s.renderError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}
