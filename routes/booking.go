package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/controllers"
	"github.com/Abishek-KS6/HomeBuddy/middleware"
	"github.com/Abishek-KS6/HomeBuddy/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Post("/", middleware.RequireRole(models.RoleCustomer), controllers.CreateBooking)
	booking.Get("/my-bookings", middleware.RequireRole(models.RoleCustomer), controllers.GetMyBookings)
	booking.Get("/provider-bookings", middleware.RequireRole(models.RoleProvider), controllers.GetProviderBookings)

	// Ownership is checked inside the handler; either side may transition
	booking.Patch("/:id/status", controllers.UpdateBookingStatus)
}
