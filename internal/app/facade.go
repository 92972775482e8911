package app

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/usecase"
)

// MarketFacade aggregates the marketplace use cases behind one surface
// consumed by the HTTP layer.
type MarketFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	reviews *usecase.ReviewUseCase
	stats   *usecase.StatsUseCase
}

func NewMarketFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, reviews *usecase.ReviewUseCase, stats *usecase.StatsUseCase) *MarketFacade {
	return &MarketFacade{auth: auth, catalog: catalog, orders: orders, reviews: reviews, stats: stats}
}

func (f *MarketFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, input)
}

func (f *MarketFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) Profile(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetProfile(ctx, id)
}

func (f *MarketFacade) UpdateProfile(ctx context.Context, callerID, userID int64, patch repository.ProfilePatch) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, callerID, userID, patch)
}

func (f *MarketFacade) Profiles(ctx context.Context, role model.Role) ([]model.User, error) {
	return f.auth.ListProfiles(ctx, role)
}

func (f *MarketFacade) CreateOffer(ctx context.Context, callerID int64, input usecase.CreateOfferInput) (*model.Offer, error) {
	return f.catalog.CreateOffer(ctx, callerID, input)
}

func (f *MarketFacade) UpdateOffer(ctx context.Context, callerID, offerID int64, patch repository.OfferPatch) (*model.Offer, error) {
	return f.catalog.UpdateOffer(ctx, callerID, offerID, patch)
}

func (f *MarketFacade) DeleteOffer(ctx context.Context, callerID, offerID int64) error {
	return f.catalog.DeleteOffer(ctx, callerID, offerID)
}

func (f *MarketFacade) Offer(ctx context.Context, offerID int64) (*model.Offer, error) {
	return f.catalog.GetOffer(ctx, offerID)
}

func (f *MarketFacade) Offers(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
	return f.catalog.ListOffers(ctx, filter)
}

func (f *MarketFacade) OfferDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error) {
	return f.catalog.GetOfferDetail(ctx, detailID)
}

func (f *MarketFacade) CreateOrder(ctx context.Context, callerID, offerDetailID int64) (*model.Order, error) {
	return f.orders.Create(ctx, callerID, offerDetailID)
}

func (f *MarketFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *MarketFacade) Orders(ctx context.Context, callerID int64) ([]model.Order, error) {
	return f.orders.List(ctx, callerID)
}

func (f *MarketFacade) UpdateOrderStatus(ctx context.Context, callerID, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, callerID, orderID, status)
}

func (f *MarketFacade) DeleteOrder(ctx context.Context, callerID, orderID int64) error {
	return f.orders.Delete(ctx, callerID, orderID)
}

func (f *MarketFacade) OrderCount(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	return f.orders.CountForBusiness(ctx, businessUserID, status)
}

func (f *MarketFacade) CreateReview(ctx context.Context, callerID, businessUserID int64, rating int32, description string) (*model.Review, error) {
	return f.reviews.Create(ctx, callerID, businessUserID, rating, description)
}

func (f *MarketFacade) Review(ctx context.Context, reviewID int64) (*model.Review, error) {
	return f.reviews.Get(ctx, reviewID)
}

func (f *MarketFacade) Reviews(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
	return f.reviews.List(ctx, filter)
}

func (f *MarketFacade) UpdateReview(ctx context.Context, callerID, reviewID int64, patch repository.ReviewPatch) (*model.Review, error) {
	return f.reviews.Update(ctx, callerID, reviewID, patch)
}

func (f *MarketFacade) DeleteReview(ctx context.Context, callerID, reviewID int64) error {
	return f.reviews.Delete(ctx, callerID, reviewID)
}

func (f *MarketFacade) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	return f.stats.BaseInfo(ctx)
}
