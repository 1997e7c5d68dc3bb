package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrReviewNotCustomer marks a review attempt by someone other than the
	// booking's customer.
	ErrReviewNotCustomer = errors.New("only the booking's customer may review it")
	// ErrReviewNotCompleted marks a review attempt on a booking that has not
	// reached the completed state.
	ErrReviewNotCompleted = errors.New("only completed bookings can be reviewed")
)

// Review is tied one-to-one to a completed booking and is immutable after
// creation.
type Review struct {
	gorm.Model
	BookingID  uint     `json:"booking_id" gorm:"uniqueIndex"`
	Booking    Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	ProviderID uint     `json:"provider_id"`
	Provider   Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CustomerID uint     `json:"customer_id"`
	Customer   User     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Rating     int      `json:"rating" gorm:"not null"`
	Comment    string   `json:"comment"`
}

// IsValidRating reports whether r is on the 1..5 review scale.
func IsValidRating(r int) bool {
	return r >= 1 && r <= 5
}

// CheckReviewable validates that customerID may review the booking: only
// the booking's own customer, and only once the booking is completed.
// Ownership is checked first so an outsider learns nothing about the
// booking's state.
func CheckReviewable(b *Booking, customerID uint) error {
	if b.CustomerID != customerID {
		return ErrReviewNotCustomer
	}
	if b.Status != StatusCompleted {
		return ErrReviewNotCompleted
	}
	return nil
}

// HasExistingReview reports whether the booking has already been reviewed.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("booking_id = ? AND deleted_at IS NULL", r.BookingID).
		Count(&count).Error
	return count > 0, err
}
