package server

import (
	"strconv"
	"strings"
	"time"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 7 * 24 * time.Hour

// issueSession signs a session token for the user and sets the HTTP-only
// cookie the auth middleware reads.
func (s *Server) issueSession(c *fiber.Ctx, user *models.User) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.config.SessionSecret))
	if err != nil {
		return models.NewInternalError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    signed,
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// clearSession expires the session cookie.
func (s *Server) clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
}

// safeNext keeps login continuations on-site: only absolute local paths are
// honored, everything else falls back to the home page.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

type signupFormData struct {
	basePageData
	Username string
	Email    string
	Error    string
}

// SignupForm renders the registration form.
func (s *Server) SignupForm(c *fiber.Ctx) error {
	return c.Render("signup", signupFormData{basePageData: s.basePage(c)})
}

// Signup registers a new user and logs them straight in.
func (s *Server) Signup(c *fiber.Ctx) error {
	form := signupFormData{
		basePageData: s.basePage(c),
		Username:     c.FormValue("username"),
		Email:        c.FormValue("email"),
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: c.FormValue("password"),
	})
	if err != nil {
		if models.IsValidation(err) {
			form.Error = err.Error()
			return c.Render("signup", form)
		}
		return err
	}

	if err := s.issueSession(c, user); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

type loginFormData struct {
	basePageData
	Username string
	Next     string
	Error    string
}

// LoginForm renders the login form, carrying the continuation target through
// a hidden field.
func (s *Server) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", loginFormData{
		basePageData: s.basePage(c),
		Next:         c.Query("next"),
	})
}

// Login authenticates the user, sets the session cookie, and follows the
// "next" continuation back to where the viewer came from.
func (s *Server) Login(c *fiber.Ctx) error {
	form := loginFormData{
		basePageData: s.basePage(c),
		Username:     c.FormValue("username"),
		Next:         c.FormValue("next"),
	}

	user, err := s.userService.Authenticate(c.UserContext(), form.Username, c.FormValue("password"))
	if err != nil {
		if models.IsUnauthorized(err) {
			form.Error = err.Error()
			return c.Render("login", form)
		}
		return err
	}

	if err := s.issueSession(c, user); err != nil {
		return err
	}
	return c.Redirect(safeNext(form.Next), fiber.StatusFound)
}

// Logout clears the session and renders the logged-out page.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSession(c)
	// The page renders for an anonymous viewer regardless of the cookie the
	// request arrived with.
	return c.Render("logged_out", basePageData{})
}

// PasswordResetForm renders the reset-request form.
func (s *Server) PasswordResetForm(c *fiber.Ctx) error {
	return c.Render("password_reset", s.basePage(c))
}

// PasswordReset acknowledges the reset request. No mail transport is wired;
// the confirmation page renders either way so the form cannot be used to
// probe which emails are registered.
func (s *Server) PasswordReset(c *fiber.Ctx) error {
	return c.Render("password_reset_done", s.basePage(c))
}
