package server

import (
	"fmt"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// basePageData carries the viewer identity every template needs.
type basePageData struct {
	Authenticated bool
	Viewer        string
	ViewerID      uint
}

func (s *Server) basePage(c *fiber.Ctx) basePageData {
	return basePageData{
		Authenticated: middleware.CurrentUserID(c) != 0,
		Viewer:        middleware.CurrentUsername(c),
		ViewerID:      middleware.CurrentUserID(c),
	}
}

// postListData renders the shared paginated post listing templates.
type postListData struct {
	basePageData
	Posts []*models.Post
	Page  pagination.Page
}

// parseID extracts a route parameter as a positive uint; ok is false when the
// parameter is missing or malformed (the caller renders a 404).
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// NotFound renders the 404 page. It doubles as the terminal route handler for
// unknown paths.
func (s *Server) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", s.basePage(c))
}

// renderError maps a service error onto an HTML response: unknown resources
// get the 404 page, everything else bubbles to the Fiber error handler.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	if models.IsNotFound(err) {
		return s.NotFound(c)
	}
	return err
}

// postDetailPath builds the canonical detail URL for redirects.
func postDetailPath(postID uint) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

// profilePath builds the canonical profile URL for redirects.
func profilePath(username string) string {
	return "/profile/" + username + "/"
}
