package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// CreateOfferInput carries the offer creation payload.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []model.OfferDetail
}

// CatalogUseCase owns offers and their pricing tiers.
type CatalogUseCase struct {
	offers repository.OfferRepository
	users  repository.UserRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(offers repository.OfferRepository, users repository.UserRepository) *CatalogUseCase {
	return &CatalogUseCase{offers: offers, users: users}
}

func validateTierSet(details []model.OfferDetail) error {
	if len(details) != 3 {
		return fmt.Errorf("%w: must provide exactly 3 details", domainErrors.ErrValidation)
	}
	seen := make(map[model.OfferType]bool, 3)
	for _, d := range details {
		seen[d.OfferType] = true
	}
	if !seen[model.OfferTypeBasic] || !seen[model.OfferTypeStandard] || !seen[model.OfferTypePremium] {
		return fmt.Errorf("%w: details must include the types basic, standard and premium", domainErrors.ErrValidation)
	}
	return nil
}

func validateDetailFields(d *model.OfferDetail) error {
	if !model.ValidOfferType(d.OfferType) {
		return fmt.Errorf("%w: unknown offer_type %q", domainErrors.ErrValidation, d.OfferType)
	}
	if d.DeliveryTimeInDays <= 0 {
		return fmt.Errorf("%w: delivery_time_in_days must be positive", domainErrors.ErrValidation)
	}
	if d.Revisions < 0 {
		return fmt.Errorf("%w: revisions must not be negative", domainErrors.ErrValidation)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	d.Price = d.Price.Round(2)
	return nil
}

// CreateOffer publishes a new offer with its three tiers. Only business
// users may create offers.
func (u *CatalogUseCase) CreateOffer(ctx context.Context, callerID int64, input CreateOfferInput) (*model.Offer, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != model.RoleBusiness {
		return nil, fmt.Errorf("%w: only business users can create offers", domainErrors.ErrForbidden)
	}

	if err := validateTierSet(input.Details); err != nil {
		return nil, err
	}
	for i := range input.Details {
		if err := validateDetailFields(&input.Details[i]); err != nil {
			return nil, err
		}
	}

	return u.offers.Create(ctx, &model.Offer{
		UserID:      callerID,
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
		Details:     input.Details,
	})
}

// UpdateOffer applies a whitelisted patch; only the owner may update.
// Patched detail entries are matched by offer_type.
func (u *CatalogUseCase) UpdateOffer(ctx context.Context, callerID, offerID int64, patch repository.OfferPatch) (*model.Offer, error) {
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.UserID != callerID {
		return nil, fmt.Errorf("%w: user is not the owner of the offer", domainErrors.ErrForbidden)
	}

	for _, d := range patch.Details {
		if !model.ValidOfferType(d.OfferType) {
			return nil, fmt.Errorf("%w: offer_type is required for each detail", domainErrors.ErrValidation)
		}
		if d.DeliveryTimeInDays != nil && *d.DeliveryTimeInDays <= 0 {
			return nil, fmt.Errorf("%w: delivery_time_in_days must be positive", domainErrors.ErrValidation)
		}
		if d.Revisions != nil && *d.Revisions < 0 {
			return nil, fmt.Errorf("%w: revisions must not be negative", domainErrors.ErrValidation)
		}
		if d.Price != nil && d.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
		}
	}

	return u.offers.Update(ctx, offerID, patch)
}

// DeleteOffer removes an offer and cascades to its details.
func (u *CatalogUseCase) DeleteOffer(ctx context.Context, callerID, offerID int64) error {
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.UserID != callerID {
		return fmt.Errorf("%w: user is not the owner of the offer", domainErrors.ErrForbidden)
	}
	return u.offers.Delete(ctx, offerID)
}

// GetOffer returns one offer with its details.
func (u *CatalogUseCase) GetOffer(ctx context.Context, offerID int64) (*model.Offer, error) {
	return u.offers.GetByID(ctx, offerID)
}

// ListOffers returns a filtered page of offers and the total match count.
func (u *CatalogUseCase) ListOffers(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
	return u.offers.List(ctx, filter)
}

// GetOfferDetail returns the full fields of one pricing tier.
func (u *CatalogUseCase) GetOfferDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error) {
	return u.offers.GetDetail(ctx, detailID)
}
