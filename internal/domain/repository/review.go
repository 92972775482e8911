package repository

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// Review list sort keys.
const (
	ReviewSortUpdatedAt = "updated_at"
	ReviewSortRating    = "rating"
)

// ReviewFilter narrows and orders the review listing.
type ReviewFilter struct {
	BusinessUserID *int64
	ReviewerID     *int64
	SortBy         string
	SortDesc       bool
}

// ReviewPatch carries the two mutable review fields.
type ReviewPatch struct {
	Rating      *int32
	Description *string
}

// ReviewRepository describes persistence operations with reviews.
// Create returns ErrAlreadyExists when the (reviewer, business user)
// pair already has a review.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]model.Review, error)
	Update(ctx context.Context, id int64, patch ReviewPatch) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}
