package helpers

import (
	"github.com/gofiber/fiber/v2"
)

// Responses use the envelope {status, message, data}; status 0 means
// success, anything else is a domain status code.
const (
	StatusOK             = 0
	StatusBadParameter   = 102
	StatusAlreadyExists  = 103
	StatusPasswordPolicy = 104
	StatusInvalidToken   = 108
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  StatusOK,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, httpStatus, status int, message string) error {
	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    nil,
	})
}

func JSONBadRequest(c *fiber.Ctx, status int, message string) error {
	return JSONError(c, fiber.StatusBadRequest, status, message)
}

func JSONUnauthorized(c *fiber.Ctx) error {
	return JSONError(c, fiber.StatusUnauthorized, StatusInvalidToken, "Token tidak valid atau kadaluwarsa")
}
