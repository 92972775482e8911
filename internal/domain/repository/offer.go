package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// Offer list sort keys.
const (
	OfferSortUpdatedAt = "updated_at"
	OfferSortMinPrice  = "min_price"
)

// OfferFilter narrows and orders the offer listing. MaxDeliveryTime is
// an upper bound on the derived min_delivery_time field.
type OfferFilter struct {
	CreatorID       *int64
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int32
	Search          string
	SortBy          string
	SortDesc        bool
	Offset          int
	Limit           int
}

// OfferDetailPatch updates or creates one tier of an offer. The tier is
// addressed by OfferType; nil fields keep the existing value when the
// tier already exists and default to zero values when it is created.
type OfferDetailPatch struct {
	OfferType          model.OfferType
	Title              *string
	Revisions          *int32
	DeliveryTimeInDays *int32
	Price              *decimal.Decimal
	Features           []string
}

// OfferPatch carries the whitelisted mutable offer fields.
type OfferPatch struct {
	Title       *string
	Image       *string
	Description *string
	Details     []OfferDetailPatch
}

// OfferRepository describes persistence operations with offers and
// their detail tiers. Create and Update are transactional: the offer
// row, its details and the derived min fields commit together.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) (*model.Offer, error)
	GetByID(ctx context.Context, id int64) (*model.Offer, error)
	List(ctx context.Context, filter OfferFilter) ([]model.Offer, int64, error)
	Update(ctx context.Context, id int64, patch OfferPatch) (*model.Offer, error)
	Delete(ctx context.Context, id int64) error
	GetDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error)
}
