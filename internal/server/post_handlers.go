package server

import (
	"strconv"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Index renders the paginated listing of all posts. The route is wrapped by
// the full-page cache middleware, so within the TTL this handler is not hit.
func (s *Server) Index(c *fiber.Ctx) error {
	posts, page, err := s.postService.ListPage(c.UserContext(), c.Query("page"))
	if err != nil {
		return err
	}
	return c.Render("index", postListData{
		basePageData: s.basePage(c),
		Posts:        posts,
		Page:         page,
	})
}

type groupPageData struct {
	basePageData
	Group *models.Group
	Posts []*models.Post
	Page  pagination.Page
}

// GroupPosts renders a group's page with its paginated posts.
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return s.renderError(c, err)
	}

	posts, page, err := s.postService.GroupPage(c.UserContext(), group.ID, c.Query("page"))
	if err != nil {
		return err
	}
	return c.Render("group_list", groupPageData{
		basePageData: s.basePage(c),
		Group:        group,
		Posts:        posts,
		Page:         page,
	})
}

type postDetailData struct {
	basePageData
	Post            *models.Post
	Comments        []*models.Comment
	AuthorPostCount int64
	IsAuthor        bool
}

// PostDetail renders a single post with its comments and comment form.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return s.NotFound(c)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, err)
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return err
	}

	authorCount, err := s.postRepo.CountByAuthor(c.UserContext(), post.AuthorID)
	if err != nil {
		return err
	}

	return c.Render("post_detail", postDetailData{
		basePageData:    s.basePage(c),
		Post:            post,
		Comments:        comments,
		AuthorPostCount: authorCount,
		IsAuthor:        middleware.CurrentUserID(c) == post.AuthorID,
	})
}

type postFormData struct {
	basePageData
	IsEdit bool
	PostID uint
	Text   string
	// GroupID is the currently selected group as a form string, "" for none.
	GroupID string
	Groups  []models.Group
	Error   string
}

func (s *Server) newPostFormData(c *fiber.Ctx, isEdit bool) (postFormData, error) {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return postFormData{}, err
	}
	return postFormData{
		basePageData: s.basePage(c),
		IsEdit:       isEdit,
		Groups:       groups,
	}, nil
}

// parseGroupField converts the optional group form value into a *uint.
func parseGroupField(raw string) (*uint, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, false
	}
	groupID := uint(id)
	return &groupID, true
}

// PostCreateForm renders the empty new-post form.
func (s *Server) PostCreateForm(c *fiber.Ctx) error {
	form, err := s.newPostFormData(c, false)
	if err != nil {
		return err
	}
	return c.Render("post_form", form)
}

// PostCreate handles new-post submission: on success the author lands on
// their own profile, on validation failure the form re-renders with the error.
func (s *Server) PostCreate(c *fiber.Ctx) error {
	form, err := s.newPostFormData(c, false)
	if err != nil {
		return err
	}
	form.Text = c.FormValue("text")
	form.GroupID = c.FormValue("group")

	groupID, ok := parseGroupField(form.GroupID)
	if !ok {
		form.Error = "Unknown group"
		return c.Render("post_form", form)
	}

	imagePath, err := s.saveUploadedImage(c)
	if err != nil {
		form.Error = err.Error()
		return c.Render("post_form", form)
	}

	_, err = s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: middleware.CurrentUserID(c),
		Text:     form.Text,
		GroupID:  groupID,
		Image:    imagePath,
	})
	if err != nil {
		if models.IsValidation(err) {
			form.Error = err.Error()
			return c.Render("post_form", form)
		}
		return err
	}

	return c.Redirect(profilePath(middleware.CurrentUsername(c)), fiber.StatusFound)
}

// PostEditForm renders the edit form pre-filled with the post's current
// values. Anyone who is not the author is bounced to the detail page.
func (s *Server) PostEditForm(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return s.NotFound(c)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, err)
	}
	if post.AuthorID != middleware.CurrentUserID(c) {
		return c.Redirect(postDetailPath(postID), fiber.StatusFound)
	}

	form, err := s.newPostFormData(c, true)
	if err != nil {
		return err
	}
	form.PostID = post.ID
	form.Text = post.Text
	if post.GroupID != nil {
		form.GroupID = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return c.Render("post_form", form)
}

// PostEdit handles edit submission. A non-author submission leaves the post
// untouched and silently redirects to the detail page.
func (s *Server) PostEdit(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return s.NotFound(c)
	}

	// Authorship decides the flow before anything else: a non-author
	// submission bounces to the detail page no matter what it carries.
	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, err)
	}
	if post.AuthorID != middleware.CurrentUserID(c) {
		return c.Redirect(postDetailPath(postID), fiber.StatusFound)
	}

	form, err := s.newPostFormData(c, true)
	if err != nil {
		return err
	}
	form.PostID = postID
	form.Text = c.FormValue("text")
	form.GroupID = c.FormValue("group")

	groupID, ok := parseGroupField(form.GroupID)
	if !ok {
		form.Error = "Unknown group"
		return c.Render("post_form", form)
	}

	imagePath, err := s.saveUploadedImage(c)
	if err != nil {
		form.Error = err.Error()
		return c.Render("post_form", form)
	}

	_, err = s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		AuthorID: middleware.CurrentUserID(c),
		PostID:   postID,
		Text:     form.Text,
		GroupID:  groupID,
		Image:    imagePath,
	})
	if err != nil {
		switch {
		case models.IsUnauthorized(err):
			return c.Redirect(postDetailPath(postID), fiber.StatusFound)
		case models.IsValidation(err):
			form.Error = err.Error()
			return c.Render("post_form", form)
		default:
			return s.renderError(c, err)
		}
	}

	return c.Redirect(postDetailPath(postID), fiber.StatusFound)
}
