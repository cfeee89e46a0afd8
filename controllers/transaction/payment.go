package transaction

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

type PaymentRequest struct {
	ServiceCode string `json:"service_code" validate:"required"`
}

func CreateTransaction(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "INVALID_JSON")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Service ataus Layanan tidak ditemukan")
	}

	var service models.ServiceItem
	if err := database.DB.Where("service_code = ?", req.ServiceCode).First(&service).Error; err != nil {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Service ataus Layanan tidak ditemukan")
	}

	before := user.Balance
	after := decimal.NewFromInt(before).Sub(decimal.NewFromInt(service.ServiceTariff)).IntPart()
	if after < 0 {
		return helpers.JSONBadRequest(c, helpers.StatusBadParameter, "Saldo tidak mencukupi")
	}

	trx := models.Transaction{
		UserID:        user.ID,
		InvoiceNumber: newInvoiceNumber(),
		ServiceCode:   service.ServiceCode,
		ServiceName:   service.ServiceName,
		TrxType:       models.TrxTypePayment,
		Description:   service.ServiceName,
		TotalAmount:   service.ServiceTariff,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
	detail, _ := json.Marshal(fiber.Map{
		"service_code":   service.ServiceCode,
		"service_tariff": service.ServiceTariff,
		"requested_at":   time.Now().Format(time.RFC3339),
	})
	trx.Detail = detail

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("balance", after).Error; err != nil {
			return err
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_CREATE_TRANSACTION")
	}

	return helpers.JSONSuccess(c, "Transaksi berhasil", fiber.Map{
		"invoice_number":   trx.InvoiceNumber,
		"service_code":     trx.ServiceCode,
		"service_name":     trx.ServiceName,
		"transaction_type": trx.TrxType,
		"total_amount":     trx.TotalAmount,
		"created_on":       trx.CreatedAt.Format(time.RFC3339),
	})
}
