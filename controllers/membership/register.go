package membership

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

var validate = validator.New()

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "INVALID_JSON")
	}

	if err := validate.Struct(req); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			for _, field := range fields {
				switch field.Field() {
				case "Email":
					return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Parameter email tidak sesuai format")
				case "Password":
					return helpers.JSONBadRequest(c, helpers.StatusPasswordPolicy, "Password minimal 8 karakter")
				}
			}
		}
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Parameter tidak lengkap")
	}

	var existing models.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helpers.JSONBadRequest(c, helpers.StatusAlreadyExists, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_CHECK_EMAIL")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_HASH_PASSWORD")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_CREATE_USER")
	}

	return helpers.JSONSuccess(c, "Registrasi berhasil silahkan login", nil)
}
