package server

import (
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment attaches a comment to a post and always redirects back to the
// detail page; invalid text is dropped without surfacing an error. Only a
// missing post gets a 404.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return s.NotFound(c)
	}

	_, err := s.commentService.AddComment(c.UserContext(), service.CreateCommentInput{
		AuthorID: middleware.CurrentUserID(c),
		PostID:   postID,
		Text:     c.FormValue("text"),
	})
	if err != nil && !models.IsValidation(err) {
		return s.renderError(c, err)
	}

	return c.Redirect(postDetailPath(postID), fiber.StatusFound)
}
