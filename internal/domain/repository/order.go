package repository

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Reads
// join the referenced offer detail so tier fields and the business
// owner always reflect the current catalog state.
type OrderRepository interface {
	Create(ctx context.Context, customerID, offerDetailID int64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByBusiness(ctx context.Context, businessUserID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
	CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error)
}
