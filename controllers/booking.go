package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Abishek-KS6/HomeBuddy/db"
	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

type bookingInput struct {
	ProviderID    uint      `json:"provider_id"`
	ServiceID     uint      `json:"service_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
}

// CreateBooking creates a pending booking for the authenticated customer.
// The price is frozen from the service's base price at creation time; the
// hourly rate is display-only and never folded into the stored price.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(bookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Address is required",
		})
	}
	if input.ScheduledDate.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Scheduled date cannot be in the past",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	var provider models.Provider
	if err := db.DB.Preload("User").First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}
	if !provider.IsApproved || !provider.Availability {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Provider is not accepting bookings",
		})
	}

	// The provider must actually offer the chosen service
	var offered int64
	db.DB.Table("provider_services").
		Where("provider_id = ? AND service_id = ?", provider.ID, service.ID).
		Count(&offered)
	if offered == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Provider does not offer this service",
		})
	}

	booking := models.Booking{
		CustomerID:    userID,
		ProviderID:    provider.ID,
		ServiceID:     service.ID,
		ScheduledDate: input.ScheduledDate,
		Address:       input.Address,
		Notes:         input.Notes,
		Price:         service.BasePrice,
		Status:        models.StatusPending,
	}

	if err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err == nil {
		notifyBookingCreated(&booking, &customer, &provider.User, &service)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings returns the authenticated customer's bookings, newest first.
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	err := db.DB.
		Preload("Service").
		Preload("Provider.User").
		Where("customer_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// GetProviderBookings returns bookings against the caller's provider profile.
func GetProviderBookings(c *fiber.Ctx) error {
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

	var bookings []models.Booking
	err := db.DB.
		Preload("Service").
		Preload("Customer").
		Where("provider_id = ?", provider.ID).
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
	}

	return c.JSON(bookings)
}

// UpdateBookingStatus moves a booking through the lifecycle graph. Only the
// booking's customer or its provider may request a transition, and only the
// moves the graph allows for their side. The row is locked for the duration
// of the check-and-write so concurrent requests cannot race past each other.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
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
	forbidden := false
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

		isCustomer := booking.CustomerID == userID
		isProvider := false
		if !isCustomer {
			var provider models.Provider
			if err := tx.Where("user_id = ?", userID).First(&provider).Error; err == nil {
				isProvider = provider.ID == booking.ProviderID
			}
		}

		if !isCustomer && !isProvider {
			forbidden = true
			return fmt.Errorf("not the booking's customer or provider")
		}
		if !models.ActorMayRequest(input.Status, isCustomer, isProvider) {
			forbidden = true
			return fmt.Errorf("role may not request status %s", input.Status)
		}

		return booking.UpdateStatus(tx, input.Status)
	})
	if err != nil {
		if notFound {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
				Error:   err.Error(),
			})
		}
		if forbidden {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You are not allowed to change this booking",
				Error:   err.Error(),
			})
		}
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Invalid status transition",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking status",
			Error:   err.Error(),
		})
	}

	notifyStatusChange(&booking, userID)

	return c.JSON(booking)
}

// notifyBookingCreated emails both parties. Mail failures are logged and
// never fail the booking.
func notifyBookingCreated(booking *models.Booking, customer, provider *models.User, service *models.Service) {
	when := booking.ScheduledDate.Format("2006-01-02 15:04:05")

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been created and is awaiting confirmation.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Scheduled:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Price:</strong> %.2f</li>
		</ul>
		<p>Thank you for choosing HomeBuddy!</p>
	`, customer.Name, service.Name, provider.Name, when, booking.Address, booking.Price)
	if err := utils.SendEmail(customer.Email, "Booking Created", body); err != nil {
		log.Printf("Failed to send booking email to customer %d: %v", customer.ID, err)
	}

	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking request.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Scheduled:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Accept or decline it from your dashboard.</p>
	`, provider.Name, service.Name, customer.Name, when, booking.Address)
	if err := utils.SendEmail(provider.Email, "New Booking Request", body); err != nil {
		log.Printf("Failed to send booking email to provider %d: %v", provider.ID, err)
	}
}

// notifyStatusChange emails the party that did not trigger the change.
func notifyStatusChange(booking *models.Booking, actorID uint) {
	var customer models.User
	var provider models.Provider
	var service models.Service
	if err := db.DB.First(&customer, booking.CustomerID).Error; err != nil {
		return
	}
	if err := db.DB.Preload("User").First(&provider, booking.ProviderID).Error; err != nil {
		return
	}
	if err := db.DB.First(&service, booking.ServiceID).Error; err != nil {
		return
	}

	recipient := customer
	if actorID == customer.ID {
		recipient = provider.User
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Booking %s for <strong>%s</strong> is now <strong>%s</strong>.</p>
		<p>Scheduled: %s</p>
	`, recipient.Name, booking.Reference, service.Name, booking.Status,
		booking.ScheduledDate.Format("2006-01-02 15:04:05"))
	if err := utils.SendEmail(recipient.Email, "Booking Status Updated", body); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}
}
