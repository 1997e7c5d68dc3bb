package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/controllers/admin"
	"github.com/Abishek-KS6/HomeBuddy/middleware"
	"github.com/Abishek-KS6/HomeBuddy/models"
)

// SetupAdminRoutes configures the admin dashboard and moderation routes.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/stats", admin.GetStats)
	adminGroup.Get("/bookings", admin.GetAllBookings)
	adminGroup.Get("/providers", admin.GetAllProviders)
	adminGroup.Put("/bookings/:id/status", admin.OverrideBookingStatus)
	adminGroup.Put("/providers/:id/status", admin.SetProviderApproval)
}
