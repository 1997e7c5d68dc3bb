package admin

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/db"
	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/redis"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = time.Minute
)

// GetStats returns the platform counters shown on the admin dashboard.
// Cached briefly in Redis; the counters tolerate a minute of staleness.
func GetStats(c *fiber.Ctx) error {
	if cached := redis.GetCached(statsCacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var stats struct {
		TotalBookings   int64 `json:"total_bookings"`
		TotalProviders  int64 `json:"total_providers"`
		TotalUsers      int64 `json:"total_users"`
		PendingBookings int64 `json:"pending_bookings"`
	}

	db.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)
	db.DB.Model(&models.Provider{}).Count(&stats.TotalProviders)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&stats.TotalUsers)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&stats.PendingBookings)

	if payload, err := json.Marshal(stats); err == nil {
		redis.SetCached(statsCacheKey, payload, statsCacheTTL)
	}

	return c.JSON(stats)
}

// GetAllBookings lists every booking with its parties, newest first.
func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	err := db.DB.
		Preload("Customer").
		Preload("Provider.User").
		Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Customer.Password = ""
		bookings[i].Provider.User.Password = ""
	}

	return c.JSON(bookings)
}

// GetAllProviders lists every provider, approved or not.
func GetAllProviders(c *fiber.Ctx) error {
	var providers []models.Provider
	err := db.DB.
		Preload("User").
		Preload("Services").
		Find(&providers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}

	for i := range providers {
		providers[i].User.Password = ""
	}

	return c.JSON(providers)
}
