package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"quill/internal/cache"
	"quill/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// cachedPage is the stored form of a full response.
type cachedPage struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// sessionVariant partitions cache keys by session. Rendered pages embed the
// viewer's identity in the navbar, so an entry must never be replayed to a
// different session; anonymous viewers share one entry.
func sessionVariant(c *fiber.Ctx) string {
	session := c.Cookies(SessionCookie)
	if session == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(session))
	return hex.EncodeToString(sum[:8])
}

// CachePage serves GET responses from a whole-page Redis cache with the given
// TTL. The key combines the prefix, the session variant, and the full request
// URI, so each page of a paginated listing caches independently and sessions
// never share entries. Within the TTL the stored body is replayed
// byte-identically regardless of data changes; there is no data-aware
// invalidation. Without a Redis client the middleware is a pass-through.
func CachePage(prefix string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache.GetClient() == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cache.PageKey(prefix, sessionVariant(c)+":"+c.OriginalURL())

		var page cachedPage
		found, err := cache.GetJSON(c.Context(), key, &page)
		if err == nil && found {
			observability.PageCacheHits.WithLabelValues(prefix).Inc()
			c.Set(fiber.HeaderContentType, page.ContentType)
			return c.Send(page.Body)
		}
		observability.PageCacheMisses.WithLabelValues(prefix).Inc()

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			stored := cachedPage{
				ContentType: string(c.Response().Header.ContentType()),
				Body:        body,
			}
			// Best-effort write: a failed cache store must not fail the request.
			_ = cache.SetJSON(c.Context(), key, stored, ttl)
		}

		return nil
	}
}
