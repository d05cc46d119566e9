package supportRoutes

import (
	controller "lms/controllers/support"
	"lms/middleware"
	validator "lms/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support")

	support.Post("/create", middleware.JWTMiddleware, validator.CreateSupportTicket(), controller.CreateSupportTicket)
	support.Get("/list", middleware.JWTMiddleware, validator.TicketList(), controller.TicketList)
	support.Get("/admin-list", middleware.JWTMiddleware, validator.AdminTicketList(), controller.AdminTicketList)
	support.Post("/admin/:ticket_id/reply", middleware.JWTMiddleware, validator.TicketIDParam(), controller.AdminReplyTicket)
}
