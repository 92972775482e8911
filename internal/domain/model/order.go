package model

import "time"

// OrderStatus describes the lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderStatusInProgress || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is a customer's commitment to one offer detail. The detail
// reference is immutable; title, price and the other tier fields are
// resolved live through it, so Detail always reflects the current state
// of the referenced tier.
type Order struct {
	ID             int64
	CustomerID     int64
	OfferDetailID  int64
	BusinessUserID int64
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Detail         OfferDetail
}
