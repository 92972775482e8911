package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.User{ID: 1, Username: input.Username, Email: input.Email, Role: input.Role}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// ProfileFacadeStub simulates profile facade interactions.
type ProfileFacadeStub struct {
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, int64, repository.ProfilePatch) (*model.User, error)
	ProfilesFn      func(context.Context, model.Role) ([]model.User, error)
}

// Profile returns configured or default user.
func (s ProfileFacadeStub) Profile(ctx context.Context, id int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user", Role: model.RoleCustomer}, nil
}

// UpdateProfile delegates to the override or echoes the target user.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, callerID, userID int64, patch repository.ProfilePatch) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, callerID, userID, patch)
	}
	return &model.User{ID: userID, Username: "user", Role: model.RoleCustomer}, nil
}

// Profiles returns configured role listing.
func (s ProfileFacadeStub) Profiles(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.ProfilesFn != nil {
		return s.ProfilesFn(ctx, role)
	}
	return []model.User{{ID: 1, Username: "user", Role: role}}, nil
}

// SampleDetail builds a plausible offer detail for tests.
func SampleDetail(id int64, tier model.OfferType) model.OfferDetail {
	return model.OfferDetail{
		ID:                 id,
		Title:              "Basic package",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              decimal.NewFromInt(100),
		Features:           []string{"Logo"},
		OfferType:          tier,
	}
}

// SampleOffer builds a plausible offer with three tiers for tests.
func SampleOffer(id, userID int64) *model.Offer {
	details := []model.OfferDetail{
		SampleDetail(id*10+1, model.OfferTypeBasic),
		SampleDetail(id*10+2, model.OfferTypeStandard),
		SampleDetail(id*10+3, model.OfferTypePremium),
	}
	minPrice, minDelivery := model.DeriveMins(details)
	now := time.Now()
	return &model.Offer{
		ID:              id,
		UserID:          userID,
		Title:           "Website design",
		Description:     "Professional website design",
		MinPrice:        minPrice,
		MinDeliveryTime: minDelivery,
		CreatedAt:       now,
		UpdatedAt:       now,
		Details:         details,
	}
}

// CatalogFacadeStub simulates offer facade interactions.
type CatalogFacadeStub struct {
	CreateOfferFn func(context.Context, int64, usecase.CreateOfferInput) (*model.Offer, error)
	UpdateOfferFn func(context.Context, int64, int64, repository.OfferPatch) (*model.Offer, error)
	DeleteOfferFn func(context.Context, int64, int64) error
	OfferFn       func(context.Context, int64) (*model.Offer, error)
	OffersFn      func(context.Context, repository.OfferFilter) ([]model.Offer, int64, error)
	DetailFn      func(context.Context, int64) (*model.OfferDetail, error)
}

// CreateOffer delegates to the override or returns a sample offer.
func (s CatalogFacadeStub) CreateOffer(ctx context.Context, callerID int64, input usecase.CreateOfferInput) (*model.Offer, error) {
	if s.CreateOfferFn != nil {
		return s.CreateOfferFn(ctx, callerID, input)
	}
	return SampleOffer(1, callerID), nil
}

// UpdateOffer delegates to the override or returns a sample offer.
func (s CatalogFacadeStub) UpdateOffer(ctx context.Context, callerID, offerID int64, patch repository.OfferPatch) (*model.Offer, error) {
	if s.UpdateOfferFn != nil {
		return s.UpdateOfferFn(ctx, callerID, offerID, patch)
	}
	return SampleOffer(offerID, callerID), nil
}

// DeleteOffer delegates to the override or succeeds.
func (s CatalogFacadeStub) DeleteOffer(ctx context.Context, callerID, offerID int64) error {
	if s.DeleteOfferFn != nil {
		return s.DeleteOfferFn(ctx, callerID, offerID)
	}
	return nil
}

// Offer returns configured or sample offer.
func (s CatalogFacadeStub) Offer(ctx context.Context, offerID int64) (*model.Offer, error) {
	if s.OfferFn != nil {
		return s.OfferFn(ctx, offerID)
	}
	return SampleOffer(offerID, 1), nil
}

// Offers returns configured listing page.
func (s CatalogFacadeStub) Offers(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
	if s.OffersFn != nil {
		return s.OffersFn(ctx, filter)
	}
	return []model.Offer{*SampleOffer(1, 1)}, 1, nil
}

// OfferDetail returns configured or sample detail.
func (s CatalogFacadeStub) OfferDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error) {
	if s.DetailFn != nil {
		return s.DetailFn(ctx, detailID)
	}
	detail := SampleDetail(detailID, model.OfferTypeBasic)
	return &detail, nil
}

// SampleOrder builds a plausible order for tests.
func SampleOrder(id, customerID, businessID int64) *model.Order {
	now := time.Now()
	return &model.Order{
		ID:             id,
		CustomerID:     customerID,
		OfferDetailID:  id * 10,
		BusinessUserID: businessID,
		Status:         model.OrderStatusInProgress,
		CreatedAt:      now,
		UpdatedAt:      now,
		Detail:         SampleDetail(id*10, model.OfferTypeBasic),
	}
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, int64, int64) (*model.Order, error)
	OrderFn  func(context.Context, int64) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	UpdateFn func(context.Context, int64, int64, model.OrderStatus) (*model.Order, error)
	DeleteFn func(context.Context, int64, int64) error
	CountFn  func(context.Context, int64, model.OrderStatus) (int64, error)
}

// CreateOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, callerID, offerDetailID int64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, callerID, offerDetailID)
	}
	return SampleOrder(1, callerID, 2), nil
}

// Order returns configured or default order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return SampleOrder(orderID, 1, 2), nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, callerID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, callerID)
	}
	return []model.Order{*SampleOrder(1, callerID, 2)}, nil
}

// UpdateOrderStatus delegates to the override or echoes the transition.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, callerID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, callerID, orderID, status)
	}
	order := SampleOrder(orderID, 1, callerID)
	order.Status = status
	return order, nil
}

// DeleteOrder delegates to the override or succeeds.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, callerID, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, callerID, orderID)
	}
	return nil
}

// OrderCount returns configured count.
func (s OrderFacadeStub) OrderCount(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, businessUserID, status)
	}
	return 0, nil
}

// SampleReview builds a plausible review for tests.
func SampleReview(id, businessID, reviewerID int64) *model.Review {
	now := time.Now()
	return &model.Review{
		ID:             id,
		BusinessUserID: businessID,
		ReviewerID:     reviewerID,
		Rating:         4,
		Description:    "Solid work",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ReviewFacadeStub simulates review facade interactions.
type ReviewFacadeStub struct {
	CreateFn  func(context.Context, int64, int64, int32, string) (*model.Review, error)
	ReviewFn  func(context.Context, int64) (*model.Review, error)
	ReviewsFn func(context.Context, repository.ReviewFilter) ([]model.Review, error)
	UpdateFn  func(context.Context, int64, int64, repository.ReviewPatch) (*model.Review, error)
	DeleteFn  func(context.Context, int64, int64) error
}

// CreateReview delegates to the override or returns a sample review.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, callerID, businessUserID int64, rating int32, description string) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, callerID, businessUserID, rating, description)
	}
	review := SampleReview(1, businessUserID, callerID)
	review.Rating = rating
	review.Description = description
	return review, nil
}

// Review returns configured or sample review.
func (s ReviewFacadeStub) Review(ctx context.Context, reviewID int64) (*model.Review, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, reviewID)
	}
	return SampleReview(reviewID, 2, 1), nil
}

// Reviews returns configured listing.
func (s ReviewFacadeStub) Reviews(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, filter)
	}
	return []model.Review{*SampleReview(1, 2, 1)}, nil
}

// UpdateReview delegates to the override or returns a sample review.
func (s ReviewFacadeStub) UpdateReview(ctx context.Context, callerID, reviewID int64, patch repository.ReviewPatch) (*model.Review, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, callerID, reviewID, patch)
	}
	return SampleReview(reviewID, 2, callerID), nil
}

// DeleteReview delegates to the override or succeeds.
func (s ReviewFacadeStub) DeleteReview(ctx context.Context, callerID, reviewID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, callerID, reviewID)
	}
	return nil
}

// StatsFacadeStub returns configured aggregate figures.
type StatsFacadeStub struct {
	BaseInfoFn func(context.Context) (*model.BaseInfo, error)
}

// BaseInfo returns configured rollup or default figures.
func (s StatsFacadeStub) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	if s.BaseInfoFn != nil {
		return s.BaseInfoFn(ctx)
	}
	return &model.BaseInfo{ReviewCount: 3, AverageRating: 4.5, BusinessProfileCount: 2, OfferCount: 5}, nil
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	ReviewFacadeStub
	StatsFacadeStub
}
