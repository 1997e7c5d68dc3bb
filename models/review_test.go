package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		assert.True(t, IsValidRating(r), "rating %d should be valid", r)
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}

func TestCheckReviewableAcceptsOwnerOfCompletedBooking(t *testing.T) {
	b := &Booking{CustomerID: 7, Status: StatusCompleted}
	assert.NoError(t, CheckReviewable(b, 7))
}

func TestCheckReviewableRejectsNonOwner(t *testing.T) {
	b := &Booking{CustomerID: 7, Status: StatusCompleted}
	assert.ErrorIs(t, CheckReviewable(b, 8), ErrReviewNotCustomer)
}

func TestCheckReviewableRejectsNonCompletedBooking(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		b := &Booking{CustomerID: 7, Status: s}
		assert.ErrorIs(t, CheckReviewable(b, 7), ErrReviewNotCompleted, "status %s", s)
	}
}

// An outsider probing someone else's booking gets the ownership error even
// when the booking is also in the wrong state.
func TestCheckReviewableOwnershipCheckedFirst(t *testing.T) {
	b := &Booking{CustomerID: 7, Status: StatusPending}
	assert.ErrorIs(t, CheckReviewable(b, 8), ErrReviewNotCustomer)
}

func TestAggregateRatingsEmptySet(t *testing.T) {
	avg, count := AggregateRatings(nil)
	assert.Equal(t, float64(0), avg)
	assert.Equal(t, int64(0), count)
}

func TestAggregateRatingsMeanAndCount(t *testing.T) {
	cases := []struct {
		ratings []int
		want    float64
	}{
		{[]int{4}, 4},
		{[]int{5, 4}, 4.5},
		{[]int{1, 5, 3}, 3},
		{[]int{1, 1, 1, 1, 1}, 1},
		{[]int{5, 5, 5}, 5},
	}
	for _, tc := range cases {
		avg, count := AggregateRatings(tc.ratings)
		assert.InDelta(t, tc.want, avg, 1e-9, "ratings %v", tc.ratings)
		assert.Equal(t, int64(len(tc.ratings)), count, "ratings %v", tc.ratings)
	}
}

// After each new rating the aggregate must equal the mean over the full set,
// never an incremental drift.
func TestAggregateRatingsTracksFullSetAfterEachReview(t *testing.T) {
	ratings := []int{5, 5}
	avg, count := AggregateRatings(ratings)
	assert.InDelta(t, 5.0, avg, 1e-9)
	assert.Equal(t, int64(2), count)

	ratings = append(ratings, 4)
	avg, count = AggregateRatings(ratings)
	assert.InDelta(t, 14.0/3.0, avg, 1e-9)
	assert.Equal(t, int64(3), count)
}
