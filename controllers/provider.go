package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abishek-KS6/HomeBuddy/db"
	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

type providerInput struct {
	ServiceIDs   []uint `json:"service_ids"`
	Experience   uint   `json:"experience"`
	Bio          string `json:"bio"`
	Availability *bool  `json:"availability"`
}

// CreateProviderProfile sets up the one-time professional profile for a
// provider-role user. The profile starts unapproved.
func CreateProviderProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(providerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var existing models.Provider
	if db.DB.Where("user_id = ?", userID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Provider profile already exists",
		})
	}

	var services []models.Service
	if len(input.ServiceIDs) > 0 {
		if err := db.DB.Find(&services, input.ServiceIDs).Error; err != nil || len(services) != len(input.ServiceIDs) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "One or more services not found",
			})
		}
	}

	provider := models.Provider{
		UserID:       userID,
		Services:     services,
		Experience:   input.Experience,
		Bio:          input.Bio,
		Availability: true,
		IsApproved:   false,
	}
	if err := db.DB.Create(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create provider profile",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}

// GetMyProviderProfile returns the caller's own provider profile.
func GetMyProviderProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var provider models.Provider
	if err := db.DB.Preload("Services").Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider profile not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(provider)
}

// UpdateMyProviderProfile edits bio, experience, availability and the
// offered services. Approval state is untouched; only an admin changes it.
func UpdateMyProviderProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var provider models.Provider
	if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider profile not found",
			Error:   err.Error(),
		})
	}

	input := new(providerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.Experience > 0 {
		updates["experience"] = input.Experience
	}
	if input.Availability != nil {
		updates["availability"] = *input.Availability
	}
	if len(updates) > 0 {
		if err := db.DB.Model(&provider).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update provider profile",
				Error:   err.Error(),
			})
		}
	}

	if input.ServiceIDs != nil {
		var services []models.Service
		if err := db.DB.Find(&services, input.ServiceIDs).Error; err != nil || len(services) != len(input.ServiceIDs) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "One or more services not found",
			})
		}
		if err := db.DB.Model(&provider).Association("Services").Replace(services); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update offered services",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(provider)
}

// GetProvidersByService lists providers bookable for a service: approved,
// available, and actually offering it.
func GetProvidersByService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var providers []models.Provider
	err := db.DB.
		Joins("JOIN provider_services ON provider_services.provider_id = providers.id").
		Where("provider_services.service_id = ? AND providers.is_approved = ? AND providers.availability = ?",
			serviceID, true, true).
		Preload("User").
		Preload("Services").
		Find(&providers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}

	// Never leak credentials through the preloaded owner
	for i := range providers {
		providers[i].User.Password = ""
	}

	return c.JSON(providers)
}

// GetAllProviders lists every approved provider.
func GetAllProviders(c *fiber.Ctx) error {
	var providers []models.Provider
	err := db.DB.Where("is_approved = ?", true).
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

// GetProvider returns one approved provider's public profile.
func GetProvider(c *fiber.Ctx) error {
	id := c.Params("id")
	var provider models.Provider
	err := db.DB.Where("is_approved = ?", true).
		Preload("User").
		Preload("Services").
		First(&provider, id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	provider.User.Password = ""
	return c.JSON(provider)
}
