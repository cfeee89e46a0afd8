package transaction

import (
	"github.com/gofiber/fiber/v2"

	"ppob/helpers"
	"ppob/models"
)

func GetBalance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	return helpers.JSONSuccess(c, "Get Balance Berhasil", fiber.Map{
		"balance": user.Balance,
	})
}
