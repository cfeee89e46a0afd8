package transaction

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

const defaultHistoryLimit = 5

// History returns one offset/limit window, newest first. Out-of-range
// parameters are clamped and the applied values are echoed back.
func History(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}

	var rows []models.Transaction
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_FETCH_HISTORY")
	}

	records := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		records = append(records, fiber.Map{
			"invoice_number":   row.InvoiceNumber,
			"service_code":     row.ServiceCode,
			"service_name":     row.ServiceName,
			"transaction_type": row.TrxType,
			"description":      row.Description,
			"total_amount":     row.TotalAmount,
			"created_on":       row.CreatedAt.Format(time.RFC3339),
		})
	}

	return helpers.JSONSuccess(c, "Get History Berhasil", fiber.Map{
		"offset":  offset,
		"limit":   limit,
		"records": records,
	})
}
