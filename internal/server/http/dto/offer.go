package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferDetailResponse exposes the full fields of one pricing tier.
type OfferDetailResponse struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Revisions          int32           `json:"revisions"`
	DeliveryTimeInDays int32           `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
}

// OfferDetailRef is the identifier+link projection used on offer reads.
type OfferDetailRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// OfferUserDetails carries the owner's display names on list views.
type OfferUserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// OfferResponse is the read view of an offer; details appear only as
// id+url references.
type OfferResponse struct {
	ID              int64             `json:"id"`
	User            int64             `json:"user"`
	Title           string            `json:"title"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []OfferDetailRef  `json:"details"`
	MinPrice        *decimal.Decimal  `json:"min_price"`
	MinDeliveryTime *int32            `json:"min_delivery_time"`
	UserDetails     *OfferUserDetails `json:"user_details,omitempty"`
}

// OfferMutationResponse is returned from offer create and patch.
type OfferMutationResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Image       string                `json:"image"`
	Description string                `json:"description"`
	Details     []OfferDetailResponse `json:"details"`
}

// OfferListResponse is the paginated offer listing.
type OfferListResponse struct {
	Count    int64           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []OfferResponse `json:"results"`
}

// CreateOfferDetailRequest is one tier of an offer creation payload.
type CreateOfferDetailRequest struct {
	Title              string          `json:"title"`
	Revisions          int32           `json:"revisions"`
	DeliveryTimeInDays int32           `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
}

// CreateOfferRequest describes the offer creation payload.
type CreateOfferRequest struct {
	Title       string                     `json:"title"`
	Image       string                     `json:"image"`
	Description string                     `json:"description"`
	Details     []CreateOfferDetailRequest `json:"details"`
}

// UpdateOfferDetailRequest patches one tier, addressed by offer_type.
type UpdateOfferDetailRequest struct {
	Title              *string          `json:"title"`
	Revisions          *int32           `json:"revisions"`
	DeliveryTimeInDays *int32           `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
	OfferType          string           `json:"offer_type"`
}

// UpdateOfferRequest carries the whitelisted offer patch fields.
type UpdateOfferRequest struct {
	Title       *string                    `json:"title"`
	Image       *string                    `json:"image"`
	Description *string                    `json:"description"`
	Details     []UpdateOfferDetailRequest `json:"details"`
}
