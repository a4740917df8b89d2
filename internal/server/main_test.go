package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"quill/internal/config"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/service"
	"quill/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// newTestServer builds a full application over an isolated in-memory database.
// Prometheus middleware stays nil so repeated app construction does not
// re-register collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db := testutil.OpenTestDB(t)
	cfg := &config.Config{
		Port:          "8000",
		SessionSecret: "test-session-secret",
		// Deliberately not created up front: uploads must work on a fresh
		// install where the media directory does not exist yet.
		MediaDir: filepath.Join(t.TempDir(), "media"),
		Env:      "test",
	}
	middleware.InitAuth(cfg)

	s := &Server{
		config:      cfg,
		db:          db,
		media:       NewMediaStore(cfg.MediaDir),
		userRepo:    repository.NewUserRepository(db),
		groupRepo:   repository.NewGroupRepository(db),
		postRepo:    repository.NewPostRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		followRepo:  repository.NewFollowRepository(db),
	}
	s.postService = service.NewPostService(s.postRepo, s.groupRepo)
	s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	s.followService = service.NewFollowService(s.followRepo, s.userRepo, s.postRepo)
	s.userService = service.NewUserService(s.userRepo)

	return s, s.NewApp(), db
}

// createUser inserts a user with a known password hash.
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID, CreatedAt: time.Now()}
	require.NoError(t, db.Create(post).Error)
	return post
}

// sessionCookie signs a session token for the user, mirroring issueSession.
func sessionCookie(t *testing.T, s *Server, user *models.User) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.config.SessionSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: signed}
}

// formRequest builds an application/x-www-form-urlencoded POST.
func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
