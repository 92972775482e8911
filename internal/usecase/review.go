package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// ReviewUseCase owns customer reviews of business users.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, users repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, users: users}
}

func validateRating(rating int32) error {
	if rating < model.RatingMin || rating > model.RatingMax {
		return fmt.Errorf("%w: rating must be between %d and %d", domainErrors.ErrValidation, model.RatingMin, model.RatingMax)
	}
	return nil
}

// Create stores a new review. Only customers may review, the target must
// hold the business role, and each (reviewer, business user) pair may
// have at most one review.
func (u *ReviewUseCase) Create(ctx context.Context, callerID, businessUserID int64, rating int32, description string) (*model.Review, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != model.RoleCustomer {
		return nil, fmt.Errorf("%w: only customers can create reviews", domainErrors.ErrForbidden)
	}

	if err := validateRating(rating); err != nil {
		return nil, err
	}

	target, err := u.users.GetByID(ctx, businessUserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: business user not found", domainErrors.ErrValidation)
		}
		return nil, err
	}
	if target.Role != model.RoleBusiness {
		return nil, fmt.Errorf("%w: user is not a business user", domainErrors.ErrValidation)
	}

	return u.reviews.Create(ctx, &model.Review{
		BusinessUserID: businessUserID,
		ReviewerID:     callerID,
		Rating:         rating,
		Description:    description,
	})
}

// Get returns one review.
func (u *ReviewUseCase) Get(ctx context.Context, reviewID int64) (*model.Review, error) {
	return u.reviews.GetByID(ctx, reviewID)
}

// List returns reviews matching the filter.
func (u *ReviewUseCase) List(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
	return u.reviews.List(ctx, filter)
}

// Update patches rating and description; only the original reviewer may
// change a review.
func (u *ReviewUseCase) Update(ctx context.Context, callerID, reviewID int64, patch repository.ReviewPatch) (*model.Review, error) {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != callerID {
		return nil, fmt.Errorf("%w: user is not the owner of the review", domainErrors.ErrForbidden)
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
	}
	return u.reviews.Update(ctx, reviewID, patch)
}

// Delete removes a review; only the original reviewer may delete it.
func (u *ReviewUseCase) Delete(ctx context.Context, callerID, reviewID int64) error {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.ReviewerID != callerID {
		return fmt.Errorf("%w: user is not the owner of the review", domainErrors.ErrForbidden)
	}
	return u.reviews.Delete(ctx, reviewID)
}
