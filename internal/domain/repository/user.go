package repository

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// ProfilePatch carries the mutable profile fields; nil means untouched.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
	File         *string
}

// UserRepository describes persistence operations with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateProfile(ctx context.Context, id int64, patch ProfilePatch) (*model.User, error)
}
