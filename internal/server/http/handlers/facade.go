package handlers

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
}

// ProfileFacade exposes profile reads and updates.
type ProfileFacade interface {
	Profile(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, callerID, userID int64, patch repository.ProfilePatch) (*model.User, error)
	Profiles(ctx context.Context, role model.Role) ([]model.User, error)
}

// CatalogFacade encapsulates offer operations exposed via HTTP.
type CatalogFacade interface {
	CreateOffer(ctx context.Context, callerID int64, input usecase.CreateOfferInput) (*model.Offer, error)
	UpdateOffer(ctx context.Context, callerID, offerID int64, patch repository.OfferPatch) (*model.Offer, error)
	DeleteOffer(ctx context.Context, callerID, offerID int64) error
	Offer(ctx context.Context, offerID int64) (*model.Offer, error)
	Offers(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error)
	OfferDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, callerID, offerDetailID int64) (*model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, callerID int64) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, callerID, orderID int64, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, callerID, orderID int64) error
	OrderCount(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error)
}

// ReviewFacade encapsulates review operations exposed via HTTP.
type ReviewFacade interface {
	CreateReview(ctx context.Context, callerID, businessUserID int64, rating int32, description string) (*model.Review, error)
	Review(ctx context.Context, reviewID int64) (*model.Review, error)
	Reviews(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error)
	UpdateReview(ctx context.Context, callerID, reviewID int64, patch repository.ReviewPatch) (*model.Review, error)
	DeleteReview(ctx context.Context, callerID, reviewID int64) error
}

// StatsFacade provides the public aggregate figures.
type StatsFacade interface {
	BaseInfo(ctx context.Context) (*model.BaseInfo, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	ProfileFacade
	CatalogFacade
	OrderFacade
	ReviewFacade
	StatsFacade
}
