package nocache

import "github.com/gofiber/fiber/v2"

// New creates a middleware that disables client and proxy caching.
// Every endpoint serves live, possibly-changing registry state.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
		return c.Next()
	}
}
