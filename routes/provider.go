package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/controllers"
	"github.com/Abishek-KS6/HomeBuddy/middleware"
	"github.com/Abishek-KS6/HomeBuddy/models"
)

// SetupProviderRoutes configures provider profile and discovery routes.
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/providers")

	// Public discovery; only approved providers are listed
	provider.Get("/", controllers.GetAllProviders)
	provider.Get("/service/:serviceId", controllers.GetProvidersByService)

	// Own profile, provider role only
	provider.Get("/profile", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.GetMyProviderProfile)
	provider.Put("/profile", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.UpdateMyProviderProfile)
	provider.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.CreateProviderProfile)

	// Keep the wildcard last so /profile and /service/:id match first
	provider.Get("/:id", controllers.GetProvider)
}
