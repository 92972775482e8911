package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read view of an order. Tier fields come live from
// the referenced offer detail.
type OrderResponse struct {
	ID                 int64           `json:"id"`
	CustomerUser       int64           `json:"customer_user"`
	BusinessUser       int64           `json:"business_user"`
	Title              string          `json:"title"`
	Revisions          int32           `json:"revisions"`
	DeliveryTimeInDays int32           `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CreateOrderRequest describes the order creation payload.
type CreateOrderRequest struct {
	OfferDetailID int64 `json:"offer_detail_id"`
}

// UpdateOrderRequest carries the status transition payload.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// OrderCountResponse is returned from the in-progress order count endpoint.
type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

// CompletedOrderCountResponse is returned from the completed order count endpoint.
type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}
