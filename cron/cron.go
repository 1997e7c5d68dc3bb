package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Abishek-KS6/HomeBuddy/db"
	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

// StartCronJobs initializes and starts the scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every 15 minutes to catch bookings scheduled about a day out
	_, err := c.AddFunc("*/15 * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders emails customers whose confirmed bookings are
// roughly 24 hours away.
func sendBookingReminders() {
	var bookings []models.Booking
	now := time.Now()
	startWindow := now.Add(23 * time.Hour)
	endWindow := now.Add(25 * time.Hour)

	err := db.DB.Preload("Customer").Preload("Service").Preload("Provider.User").
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Service - %s", booking.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your service booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Scheduled:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>If you need to cancel, do so from your bookings page.</p>
		<p>Best regards,</p>
		<p>The HomeBuddy Team</p>
	`, booking.Customer.Name, booking.Service.Name, booking.Provider.User.Name,
		booking.ScheduledDate.Format("2006-01-02 15:04:05"), booking.Address)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}
