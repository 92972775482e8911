package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	pkgAuth "github.com/alexh7799/coderr/internal/pkg/auth"
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
	Role             model.Role
}

// AuthUseCase handles account lifecycle, profiles and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns it with an auth token.
func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", domainErrors.ErrValidation)
	}
	if input.Password != input.RepeatedPassword {
		return nil, "", fmt.Errorf("%w: passwords do not match", domainErrors.ErrValidation)
	}
	if !model.ValidRole(input.Role) {
		return nil, "", fmt.Errorf("%w: type must be business or customer", domainErrors.ErrValidation)
	}

	taken, err := u.users.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", fmt.Errorf("%w: this email is already in use", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetProfile fetches a user profile by identifier.
func (u *AuthUseCase) GetProfile(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile applies profile changes; only the owner may patch.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, callerID, userID int64, patch repository.ProfilePatch) (*model.User, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if callerID != userID {
		return nil, fmt.Errorf("%w: authenticated user is not the owner of the profile", domainErrors.ErrForbidden)
	}
	return u.users.UpdateProfile(ctx, userID, patch)
}

// ListProfiles returns profiles carrying the given role.
func (u *AuthUseCase) ListProfiles(ctx context.Context, role model.Role) ([]model.User, error) {
	return u.users.ListByRole(ctx, role)
}
