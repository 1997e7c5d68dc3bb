package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/controllers"
	"github.com/Abishek-KS6/HomeBuddy/middleware"
	"github.com/Abishek-KS6/HomeBuddy/models"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")
	review.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleCustomer), controllers.CreateReview)
	review.Get("/my-reviews", middleware.Protected(), middleware.RequireRole(models.RoleProvider), controllers.GetMyReviews)
	review.Get("/provider/:id", controllers.GetProviderReviews)
}
