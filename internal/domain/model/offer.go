package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferType identifies one of the three pricing tiers of an offer.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// ValidOfferType reports whether t names a known pricing tier.
func ValidOfferType(t OfferType) bool {
	return t == OfferTypeBasic || t == OfferTypeStandard || t == OfferTypePremium
}

// Offer is a published service listing owned by a business user.
// MinPrice and MinDeliveryTime are derived from the detail set and are
// never accepted from a client; they are nil only while the detail set
// is empty.
type Offer struct {
	ID              int64
	UserID          int64
	Title           string
	Image           string
	Description     string
	MinPrice        *decimal.Decimal
	MinDeliveryTime *int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Details         []OfferDetail
}

// OfferDetail is one priced tier under an offer.
type OfferDetail struct {
	ID                 int64
	OfferID            int64
	Title              string
	Revisions          int32
	DeliveryTimeInDays int32
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
}

// DeriveMins computes the minimum price and minimum delivery time over
// the given detail set. Both results are nil when the set is empty.
func DeriveMins(details []OfferDetail) (*decimal.Decimal, *int32) {
	if len(details) == 0 {
		return nil, nil
	}
	minPrice := details[0].Price
	minDelivery := details[0].DeliveryTimeInDays
	for _, d := range details[1:] {
		if d.Price.LessThan(minPrice) {
			minPrice = d.Price
		}
		if d.DeliveryTimeInDays < minDelivery {
			minDelivery = d.DeliveryTimeInDays
		}
	}
	return &minPrice, &minDelivery
}
