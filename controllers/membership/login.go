package membership

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

const sessionTTL = 12 * time.Hour

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "INVALID_JSON")
	}

	if err := validate.Struct(req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Parameter email tidak sesuai format")
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, helpers.StatusAlreadyExists, "Username atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, helpers.StatusAlreadyExists, "Username atau password salah")
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Login Sukses", fiber.Map{
		"token": session.Token,
	})
}
