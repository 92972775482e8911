package model

import "time"

// Rating bounds for reviews.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a customer's rating of a business user. Each reviewer may
// leave at most one review per business user.
type Review struct {
	ID             int64
	BusinessUserID int64
	ReviewerID     int64
	Rating         int32
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
