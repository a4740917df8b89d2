package middleware

import (
	"strconv"
	"strings"

	"quill/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "quill_session"

// LoginPath is where anonymous requests to guarded routes are redirected.
const LoginPath = "/auth/login/"

var cfg *config.Config

// InitAuth initializes authentication middleware with the given config.
func InitAuth(c *config.Config) {
	cfg = c
}

// parseSession validates the session token and returns the user ID and
// username claims, or false when the token is missing or invalid.
func parseSession(tokenString string) (uint, string, bool) {
	if tokenString == "" || cfg == nil {
		return 0, "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, "", false
	}
	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userID == 0 {
		return 0, "", false
	}

	username, _ := claims["username"].(string)
	return uint(userID), username, true
}

// LoadUser resolves the session cookie, if any, and stores the viewer's
// identity in request locals. Anonymous requests pass through untouched.
func LoadUser(c *fiber.Ctx) error {
	if userID, username, ok := parseSession(c.Cookies(SessionCookie)); ok {
		c.Locals("userID", userID)
		c.Locals("username", username)
	}
	return c.Next()
}

// nextEscaper encodes the characters that would corrupt the continuation when
// embedded as a query value. Slashes stay literal so the redirect reads as
// /auth/login/?next=/posts/1/comment/.
var nextEscaper = strings.NewReplacer(
	"%", "%25",
	"&", "%26",
	"#", "%23",
	"+", "%2B",
	";", "%3B",
)

// LoginRequired redirects anonymous requests to the login page with a "next"
// continuation parameter pointing back at the original URL, including any
// query string it carried.
func LoginRequired(c *fiber.Ctx) error {
	if c.Locals("userID") == nil {
		return c.Redirect(LoginPath+"?next="+nextEscaper.Replace(c.OriginalURL()), fiber.StatusFound)
	}
	return c.Next()
}

// CurrentUserID returns the authenticated viewer's ID, or 0 for anonymous requests.
func CurrentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// CurrentUsername returns the authenticated viewer's username, or "" for
// anonymous requests.
func CurrentUsername(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return ""
}
