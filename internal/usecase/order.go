package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// OrderUseCase owns order lifecycle and the per-business order counts.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users}
}

// Create places an order against an offer detail. Only customers may order.
func (u *OrderUseCase) Create(ctx context.Context, callerID, offerDetailID int64) (*model.Order, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != model.RoleCustomer {
		return nil, fmt.Errorf("%w: only customers can place orders", domainErrors.ErrForbidden)
	}
	return u.orders.Create(ctx, callerID, offerDetailID)
}

// Get returns one order; any authenticated user may retrieve it.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// List returns orders visible to the caller: customers see their own,
// business users see orders placed against their offers, anyone else
// sees nothing.
func (u *OrderUseCase) List(ctx context.Context, callerID int64) ([]model.Order, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case model.RoleCustomer:
		return u.orders.ListByCustomer(ctx, callerID)
	case model.RoleBusiness:
		return u.orders.ListByBusiness(ctx, callerID)
	default:
		return nil, nil
	}
}

// UpdateStatus transitions an order; only the business user owning the
// underlying offer may change it.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, callerID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: status must be in_progress, completed or cancelled", domainErrors.ErrValidation)
	}

	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != model.RoleBusiness {
		return nil, fmt.Errorf("%w: only business users can update orders", domainErrors.ErrForbidden)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BusinessUserID != callerID {
		return nil, fmt.Errorf("%w: user is not the owner of the offer", domainErrors.ErrForbidden)
	}

	return u.orders.UpdateStatus(ctx, orderID, status)
}

// Delete removes an order; restricted to staff accounts.
func (u *OrderUseCase) Delete(ctx context.Context, callerID, orderID int64) error {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return err
	}
	if !caller.IsStaff {
		return fmt.Errorf("%w: only staff can delete orders", domainErrors.ErrForbidden)
	}
	return u.orders.Delete(ctx, orderID)
}

// CountForBusiness returns the number of orders in the given status across
// all offers of one business user.
func (u *OrderUseCase) CountForBusiness(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	target, err := u.users.GetByID(ctx, businessUserID)
	if err != nil {
		return 0, err
	}
	if target.Role != model.RoleBusiness {
		return 0, fmt.Errorf("%w: user-profile is not a business user", domainErrors.ErrValidation)
	}
	return u.orders.CountByBusinessAndStatus(ctx, businessUserID, status)
}
