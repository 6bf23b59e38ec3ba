package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RateLimitKeyByUser returns a key for the rate limiter: per-user when the
// userUid query parameter is present (both quiz verbs carry it), else per-IP.
func RateLimitKeyByUser(c *fiber.Ctx) string {
	if uid := c.Query("userUid"); uid != "" {
		return "user:" + uid
	}
	return c.IP()
}
