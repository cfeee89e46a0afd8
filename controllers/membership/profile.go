package membership

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

func profileData(user models.User) fiber.Map {
	image := user.ProfileImage
	if image == "" {
		// The web client renders the string "null" as its placeholder.
		image = "null"
	}
	return fiber.Map{
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"profile_image": image,
	}
}

func GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}
	return helpers.JSONSuccess(c, "Sukses", profileData(user))
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

func UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Parameter tidak lengkap")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := database.DB.Save(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_UPDATE_PROFILE")
	}

	return helpers.JSONSuccess(c, "Update Pofile berhasil", profileData(user))
}

func UpdateProfileImage(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Field file wajib diisi")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Format Image tidak sesuai")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_STORE_IMAGE")
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(uploadDir, name)); err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_STORE_IMAGE")
	}

	user.ProfileImage = "/images/" + name
	if err := database.DB.Save(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_UPDATE_PROFILE")
	}

	return helpers.JSONSuccess(c, "Update Profile Image berhasil", profileData(user))
}
