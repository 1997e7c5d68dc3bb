package models

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidTransition marks a lifecycle-graph violation, as opposed to an
// infrastructure failure during the status write. Callers match it with
// errors.Is to pick the right response code.
var ErrInvalidTransition = errors.New("invalid status transition")

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValidStatus reports whether s is one of the four booking statuses.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	Reference     string        `json:"reference" gorm:"uniqueIndex"`
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer" gorm:"foreignKey:CustomerID"`
	ProviderID    uint          `json:"provider_id"`
	Provider      Provider      `json:"provider" gorm:"foreignKey:ProviderID"`
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service" gorm:"foreignKey:ServiceID"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
	Price         float64       `json:"price"`
	Status        BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	return nil
}

// CheckTransition validates a move through the booking lifecycle graph:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Completed and cancelled are terminal. Requesting the current status again
// is rejected the same way, so a retried confirm never re-applies effects.
func CheckTransition(from, to BookingStatus) error {
	if !IsValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	switch from {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCancelled {
			return fmt.Errorf("%w: from pending to %s", ErrInvalidTransition, to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCancelled {
			return fmt.Errorf("%w: from confirmed to %s", ErrInvalidTransition, to)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, from)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}
	return nil
}

// ActorMayRequest reports whether the booking's customer or provider may
// request the given target status. Confirming is the provider's call;
// cancelling and completing are open to both sides.
func ActorMayRequest(to BookingStatus, isCustomer, isProvider bool) bool {
	switch to {
	case StatusConfirmed:
		return isProvider
	case StatusCancelled, StatusCompleted:
		return isCustomer || isProvider
	}
	return false
}

// UpdateStatus applies a graph-checked transition as a single status write.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := CheckTransition(b.Status, newStatus); err != nil {
		return err
	}
	b.Status = newStatus
	return tx.Model(b).Update("status", newStatus).Error
}

// AdminOverrideStatus force-sets any of the four statuses without consulting
// the transition graph. Every override is logged with the acting admin.
func (b *Booking) AdminOverrideStatus(tx *gorm.DB, newStatus BookingStatus, adminID uint) error {
	if !IsValidStatus(newStatus) {
		return fmt.Errorf("unknown status %q", newStatus)
	}
	log.Printf("admin %d overrides booking %d status: %s -> %s", adminID, b.ID, b.Status, newStatus)
	b.Status = newStatus
	return tx.Model(b).Update("status", newStatus).Error
}
