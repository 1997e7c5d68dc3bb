package models

import (
	"gorm.io/gorm"
)

// Provider is the professional profile attached to a provider-role user.
// A user owns at most one profile; it starts unapproved and only an admin
// may flip IsApproved.
type Provider struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Services     []Service `json:"services,omitempty" gorm:"many2many:provider_services;"`
	Experience   uint      `json:"experience"`
	Bio          string    `json:"bio"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	TotalReviews int64     `json:"total_reviews" gorm:"default:0"`
	Availability bool      `json:"availability" gorm:"default:true"`
	IsApproved   bool      `json:"is_approved" gorm:"default:false"`
}

// AggregateRatings returns the unweighted mean and count of the given
// ratings. An empty set yields a zero rating, matching a fresh profile.
func AggregateRatings(ratings []int) (float64, int64) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), int64(len(ratings))
}

// RecalculateRating refreshes Rating and TotalReviews from the full review
// set for this provider, not just the latest row. Run it inside the same
// transaction that created the review so the aggregate can never drift from
// the rows it summarises.
func (p *Provider) RecalculateRating(tx *gorm.DB) error {
	var ratings []int
	err := tx.Model(&Review{}).
		Where("provider_id = ?", p.ID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return err
	}

	p.Rating, p.TotalReviews = AggregateRatings(ratings)
	return tx.Model(p).Updates(map[string]interface{}{
		"rating":        p.Rating,
		"total_reviews": p.TotalReviews,
	}).Error
}
