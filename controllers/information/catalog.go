package information

import (
	"github.com/gofiber/fiber/v2"

	"ppob/database"
	"ppob/helpers"
	"ppob/models"
)

func Services(c *fiber.Ctx) error {
	var items []models.ServiceItem
	if err := database.DB.Order("service_tariff asc, service_code asc").Find(&items).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_FETCH_SERVICES")
	}

	services := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		services = append(services, fiber.Map{
			"service_code":   item.ServiceCode,
			"service_name":   item.ServiceName,
			"service_icon":   item.ServiceIcon,
			"service_tariff": item.ServiceTariff,
		})
	}

	return helpers.JSONSuccess(c, "Sukses", services)
}

func Banners(c *fiber.Ctx) error {
	var items []models.BannerItem
	if err := database.DB.Order("id asc").Find(&items).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, helpers.StatusBadParameter, "FAILED_TO_FETCH_BANNERS")
	}

	banners := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		banners = append(banners, fiber.Map{
			"banner_name":  item.BannerName,
			"banner_image": item.BannerImage,
			"description":  item.Description,
		})
	}

	return helpers.JSONSuccess(c, "Sukses", banners)
}
