package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Abishek-KS6/HomeBuddy/db"
	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

// OverrideBookingStatus force-sets a booking to any of the four statuses,
// bypassing the lifecycle graph. The acting admin is logged with the change.
func OverrideBookingStatus(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")

	type statusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !models.IsValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("Unknown status %q", input.Status),
		})
	}

	var booking models.Booking
	notFound := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`
			SELECT *
			FROM bookings
			WHERE id = ? AND deleted_at IS NULL FOR UPDATE
		`, id).Scan(&booking).Error; err != nil {
			return err
		}
		if booking.ID == 0 {
			notFound = true
			return fmt.Errorf("booking not found")
		}
		return booking.AdminOverrideStatus(tx, input.Status, adminID)
	})
	if err != nil {
		if notFound {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to override booking status",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// SetProviderApproval flips the approval gate on a provider profile.
func SetProviderApproval(c *fiber.Ctx) error {
	id := c.Params("id")

	type approvalInput struct {
		IsApproved *bool `json:"is_approved"`
	}
	input := new(approvalInput)
	if err := c.BodyParser(input); err != nil || input.IsApproved == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "is_approved is required",
		})
	}

	var provider models.Provider
	if err := db.DB.Preload("User").First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&provider).Update("is_approved", *input.IsApproved).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider approval",
			Error:   err.Error(),
		})
	}

	provider.User.Password = ""
	return c.JSON(provider)
}
