package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

// SessionAuth resolves the Bearer token to an unexpired session and puts
// the user in locals. Any failure answers 401 with status 108, which
// clients map to their session-recovery path.
func SessionAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return helpers.JSONUnauthorized(c)
	}

	var session models.Session
	if err := database.DB.Preload("User").Where("token = ?", strings.ToLower(token)).First(&session).Error; err != nil {
		return helpers.JSONUnauthorized(c)
	}
	if session.Expired() {
		return helpers.JSONUnauthorized(c)
	}

	c.Locals("user", session.User)
	return c.Next()
}
