package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID       map[int64]*model.User
	ByUsername map[string]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID:       make(map[int64]*model.User),
		ByUsername: make(map[string]*model.User),
		Next:       1,
	}
}

// Add seeds a user, assigning an identifier when missing.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByID[user.ID] = user
	s.ByUsername[user.Username] = user
	return user
}

// Create registers user unless the username is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.CreatedAt = time.Now()
	return s.Add(&stored), nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// EmailTaken reports whether any stored user holds the email.
func (s *UserRepositoryStub) EmailTaken(ctx context.Context, email string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, user := range s.ByID {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ListByRole returns stored users holding the role, ordered by id.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var users []model.User
	for _, user := range s.ByID {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// UpdateProfile applies non-nil patch fields to the stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, patch repository.ProfilePatch) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Location != nil {
		user.Location = *patch.Location
	}
	if patch.Tel != nil {
		user.Tel = *patch.Tel
	}
	if patch.Description != nil {
		user.Description = *patch.Description
	}
	if patch.WorkingHours != nil {
		user.WorkingHours = *patch.WorkingHours
	}
	if patch.File != nil {
		user.File = *patch.File
	}
	return user, nil
}

// OfferRepositoryStub stores offers in-memory for tests, mirroring the
// derived-field behaviour of the real repository.
type OfferRepositoryStub struct {
	Offers     map[int64]*model.Offer
	NextID     int64
	NextDetail int64
	Err        error
}

// NewOfferRepositoryStub constructs stub repository with initialized maps.
func NewOfferRepositoryStub() *OfferRepositoryStub {
	return &OfferRepositoryStub{Offers: make(map[int64]*model.Offer), NextID: 1, NextDetail: 1}
}

// Create stores offer and its details, deriving the min fields.
func (s *OfferRepositoryStub) Create(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *offer
	stored.ID = s.NextID
	s.NextID++
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	for i := range stored.Details {
		stored.Details[i].ID = s.NextDetail
		stored.Details[i].OfferID = stored.ID
		s.NextDetail++
	}
	stored.MinPrice, stored.MinDeliveryTime = model.DeriveMins(stored.Details)
	s.Offers[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches offer by identifier or returns not found.
func (s *OfferRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offer, ok := s.Offers[id]; ok {
		return offer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List applies the filter over stored offers and returns a page.
func (s *OfferRepositoryStub) List(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Offer
	for _, offer := range s.Offers {
		if filter.CreatorID != nil && offer.UserID != *filter.CreatorID {
			continue
		}
		if filter.MinPrice != nil && (offer.MinPrice == nil || offer.MinPrice.LessThan(*filter.MinPrice)) {
			continue
		}
		if filter.MaxDeliveryTime != nil && (offer.MinDeliveryTime == nil || *offer.MinDeliveryTime > *filter.MaxDeliveryTime) {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(offer.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(offer.Description), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *offer)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

// Update applies a patch the way the real repository does: scalars in
// place, detail entries merged per offer_type, min fields rederived.
func (s *OfferRepositoryStub) Update(ctx context.Context, id int64, patch repository.OfferPatch) (*model.Offer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	offer, ok := s.Offers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Title != nil {
		offer.Title = *patch.Title
	}
	if patch.Image != nil {
		offer.Image = *patch.Image
	}
	if patch.Description != nil {
		offer.Description = *patch.Description
	}
	for _, dp := range patch.Details {
		idx := -1
		for i := range offer.Details {
			if offer.Details[i].OfferType == dp.OfferType {
				idx = i
				break
			}
		}
		if idx == -1 {
			offer.Details = append(offer.Details, model.OfferDetail{
				ID:        s.NextDetail,
				OfferID:   offer.ID,
				OfferType: dp.OfferType,
			})
			s.NextDetail++
			idx = len(offer.Details) - 1
		}
		detail := &offer.Details[idx]
		if dp.Title != nil {
			detail.Title = *dp.Title
		}
		if dp.Revisions != nil {
			detail.Revisions = *dp.Revisions
		}
		if dp.DeliveryTimeInDays != nil {
			detail.DeliveryTimeInDays = *dp.DeliveryTimeInDays
		}
		if dp.Price != nil {
			detail.Price = *dp.Price
		}
		if dp.Features != nil {
			detail.Features = dp.Features
		}
	}
	offer.MinPrice, offer.MinDeliveryTime = model.DeriveMins(offer.Details)
	offer.UpdatedAt = time.Now()
	return offer, nil
}

// Delete removes offer and its details.
func (s *OfferRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Offers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Offers, id)
	return nil
}

// GetDetail resolves one detail tier across all stored offers.
func (s *OfferRepositoryStub) GetDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, offer := range s.Offers {
		for i := range offer.Details {
			if offer.Details[i].ID == detailID {
				return &offer.Details[i], nil
			}
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub stores orders in-memory for tests. Details and
// their business owners are resolved through the configured catalog.
type OrderRepositoryStub struct {
	Orders   map[int64]*model.Order
	Details  map[int64]model.OfferDetail
	Owners   map[int64]int64
	Next     int64
	Err      error
	Statuses []model.OrderStatus
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:  make(map[int64]*model.Order),
		Details: make(map[int64]model.OfferDetail),
		Owners:  make(map[int64]int64),
		Next:    1,
	}
}

// SeedDetail registers an offer detail and its owning business user.
func (s *OrderRepositoryStub) SeedDetail(detail model.OfferDetail, businessUserID int64) {
	s.Details[detail.ID] = detail
	s.Owners[detail.ID] = businessUserID
}

// Create places an order against a seeded detail.
func (s *OrderRepositoryStub) Create(ctx context.Context, customerID, offerDetailID int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	detail, ok := s.Details[offerDetailID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	now := time.Now()
	order := &model.Order{
		ID:             s.Next,
		CustomerID:     customerID,
		OfferDetailID:  offerDetailID,
		BusinessUserID: s.Owners[offerDetailID],
		Status:         model.OrderStatusInProgress,
		CreatedAt:      now,
		UpdatedAt:      now,
		Detail:         detail,
	}
	s.Next++
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns orders placed by the customer.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(o *model.Order) bool { return o.CustomerID == customerID }), nil
}

// ListByBusiness returns orders against the business user's offers.
func (s *OrderRepositoryStub) ListByBusiness(ctx context.Context, businessUserID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(o *model.Order) bool { return o.BusinessUserID == businessUserID }), nil
}

// UpdateStatus transitions the stored order and records the call.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	s.Statuses = append(s.Statuses, status)
	return order, nil
}

// Delete removes the stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// CountByBusinessAndStatus counts matching stored orders.
func (s *OrderRepositoryStub) CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var count int64
	for _, order := range s.Orders {
		if order.BusinessUserID == businessUserID && order.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *OrderRepositoryStub) collect(match func(*model.Order) bool) []model.Order {
	var orders []model.Order
	for _, order := range s.Orders {
		if match(order) {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// ReviewRepositoryStub stores reviews in-memory enforcing the one
// review per (reviewer, business user) pair rule.
type ReviewRepositoryStub struct {
	Reviews map[int64]*model.Review
	Next    int64
	Err     error
}

// NewReviewRepositoryStub constructs stub repository with initialized maps.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{Reviews: make(map[int64]*model.Review), Next: 1}
}

// Create stores review unless the pair already has one.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Reviews {
		if existing.BusinessUserID == review.BusinessUserID && existing.ReviewerID == review.ReviewerID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *review
	stored.ID = s.Next
	s.Next++
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.Reviews[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches review by identifier or returns not found.
func (s *ReviewRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if review, ok := s.Reviews[id]; ok {
		return review, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns reviews matching the filter, newest first by default.
func (s *ReviewRepositoryStub) List(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var reviews []model.Review
	for _, review := range s.Reviews {
		if filter.BusinessUserID != nil && review.BusinessUserID != *filter.BusinessUserID {
			continue
		}
		if filter.ReviewerID != nil && review.ReviewerID != *filter.ReviewerID {
			continue
		}
		reviews = append(reviews, *review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if filter.SortBy == repository.ReviewSortRating {
			if filter.SortDesc {
				return reviews[i].Rating > reviews[j].Rating
			}
			return reviews[i].Rating < reviews[j].Rating
		}
		if filter.SortDesc {
			return reviews[i].ID > reviews[j].ID
		}
		return reviews[i].ID < reviews[j].ID
	})
	return reviews, nil
}

// Update applies non-nil patch fields to the stored review.
func (s *ReviewRepositoryStub) Update(ctx context.Context, id int64, patch repository.ReviewPatch) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	review, ok := s.Reviews[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Description != nil {
		review.Description = *patch.Description
	}
	review.UpdatedAt = time.Now()
	return review, nil
}

// Delete removes the stored review.
func (s *ReviewRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Reviews[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Reviews, id)
	return nil
}

// StatsRepositoryStub returns a configured aggregate rollup.
type StatsRepositoryStub struct {
	Info *model.BaseInfo
	Err  error
}

// BaseInfo returns the configured rollup or an empty one.
func (s StatsRepositoryStub) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Info != nil {
		info := *s.Info
		return &info, nil
	}
	return &model.BaseInfo{}, nil
}

var (
	_ repository.UserRepository   = (*UserRepositoryStub)(nil)
	_ repository.OfferRepository  = (*OfferRepositoryStub)(nil)
	_ repository.OrderRepository  = (*OrderRepositoryStub)(nil)
	_ repository.ReviewRepository = (*ReviewRepositoryStub)(nil)
	_ repository.StatsRepository  = StatsRepositoryStub{}
)
