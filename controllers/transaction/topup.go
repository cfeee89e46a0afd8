package transaction

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

var validate = validator.New()

type TopUpRequest struct {
	TopUpAmount int64 `json:"top_up_amount" validate:"required,gt=0"`
}

func TopUp(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter,
			"Parameter amount hanya boleh angka dan tidak boleh lebih kecil dari 0")
	}

	before := user.Balance
	after := decimal.NewFromInt(before).Add(decimal.NewFromInt(req.TopUpAmount)).IntPart()

	trx := models.Transaction{
		UserID:        user.ID,
		InvoiceNumber: newInvoiceNumber(),
		TrxType:       models.TrxTypeTopUp,
		Description:   "Top Up balance",
		TotalAmount:   req.TopUpAmount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
	detail, _ := json.Marshal(fiber.Map{
		"top_up_amount": req.TopUpAmount,
		"requested_at":  time.Now().Format(time.RFC3339),
	})
	trx.Detail = detail

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("balance", after).Error; err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_TOP_UP")
	}

	return helpers.JSONSuccess(c, "Top Up Balance berhasil", fiber.Map{
		"balance": after,
	})
}
