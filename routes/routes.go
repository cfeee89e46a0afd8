package routes

import (
	"github.com/gofiber/fiber/v2"

	"ppob/controllers/information"
	"ppob/controllers/membership"
	"ppob/controllers/transaction"
	"ppob/middlewares"
)

func Setup(app *fiber.App) {
	app.Post("/registration", membership.Register)
	app.Post("/login", membership.Login)

	api := app.Group("", middlewares.SessionAuth)
	api.Get("/profile", membership.GetProfile)
	api.Put("/profile/update", membership.UpdateProfile)
	api.Put("/profile/image", membership.UpdateProfileImage)

	api.Get("/services", information.Services)
	api.Get("/banner", information.Banners)

	api.Get("/balance", transaction.GetBalance)
	api.Post("/topup", transaction.TopUp)
	api.Post("/transaction", transaction.CreateTransaction)
	api.Get("/transaction/history", transaction.History)
}
