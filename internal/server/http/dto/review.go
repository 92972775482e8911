package dto

import "time"

// ReviewResponse is the read view of a review.
type ReviewResponse struct {
	ID           int64     `json:"id"`
	BusinessUser int64     `json:"business_user"`
	Reviewer     int64     `json:"reviewer"`
	Rating       int32     `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateReviewRequest describes the review creation payload.
type CreateReviewRequest struct {
	BusinessUser int64  `json:"business_user"`
	Rating       int32  `json:"rating"`
	Description  string `json:"description"`
}

// UpdateReviewRequest carries the two patchable review fields.
type UpdateReviewRequest struct {
	Rating      *int32  `json:"rating"`
	Description *string `json:"description"`
}
