package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDefaultsToPending(t *testing.T) {
	b := &Booking{}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, StatusPending, b.Status)
	assert.NotEmpty(t, b.Reference)
}

func TestBookingKeepsExplicitStatus(t *testing.T) {
	b := &Booking{Status: StatusConfirmed, Reference: "ref-1"}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "ref-1", b.Reference)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s), "expected %s to be valid", s)
	}
	assert.False(t, IsValidStatus("rejected"))
	assert.False(t, IsValidStatus(""))
}

func TestCheckTransition(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.NoError(t, CheckTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct {
		from, to BookingStatus
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusConfirmed},
		{StatusConfirmed, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
	}
	// Graph violations carry the sentinel so handlers can answer 409
	// instead of treating them as infrastructure failures.
	for _, tc := range denied {
		assert.ErrorIs(t, CheckTransition(tc.from, tc.to), ErrInvalidTransition, "%s -> %s should be rejected", tc.from, tc.to)
	}
}

// Re-requesting the current status must be an error, not a silent success,
// so a retried confirm can never re-run its side effects.
func TestCheckTransitionRejectsRepeat(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.Error(t, CheckTransition(s, s), "repeat of %s should be rejected", s)
	}
}

func TestCheckTransitionRejectsUnknownStatus(t *testing.T) {
	assert.ErrorIs(t, CheckTransition(StatusPending, "rejected"), ErrInvalidTransition)
	assert.ErrorIs(t, CheckTransition("unknown", StatusConfirmed), ErrInvalidTransition)
}

func TestActorMayRequest(t *testing.T) {
	// Confirming is the provider's call
	assert.True(t, ActorMayRequest(StatusConfirmed, false, true))
	assert.False(t, ActorMayRequest(StatusConfirmed, true, false))

	// Either side may cancel or complete
	assert.True(t, ActorMayRequest(StatusCancelled, true, false))
	assert.True(t, ActorMayRequest(StatusCancelled, false, true))
	assert.True(t, ActorMayRequest(StatusCompleted, true, false))
	assert.True(t, ActorMayRequest(StatusCompleted, false, true))

	// A third party may do nothing
	assert.False(t, ActorMayRequest(StatusCancelled, false, false))
	assert.False(t, ActorMayRequest(StatusCompleted, false, false))

	// Nobody requests pending
	assert.False(t, ActorMayRequest(StatusPending, true, true))
}
