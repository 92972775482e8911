package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

var detailColumnNames = []string{
	"id", "offer_id", "title", "revisions", "delivery_time_in_days", "price", "features", "offer_type",
}

var offerColumnNames = []string{
	"id", "user_id", "title", "image", "description", "min_price", "min_delivery_time", "created_at", "updated_at",
}

func offerRow(mock pgxmockv3.PgxPoolIface, id, userID int64, minPrice decimal.Decimal, minDelivery int32, stamp time.Time) *pgxmockv3.Rows {
	return mock.NewRows(offerColumnNames).
		AddRow(id, userID, "Webdesign", "", "Landing pages", &minPrice, &minDelivery, stamp, stamp)
}

func detailRow(mock pgxmockv3.PgxPoolIface, id, offerID int64, tier model.OfferType, price decimal.Decimal, delivery int32) *pgxmockv3.Rows {
	return mock.NewRows(detailColumnNames).
		AddRow(id, offerID, "Paket", int32(2), delivery, price, []byte(`["Logo"]`), tier)
}

func threeDetails(price decimal.Decimal) []model.OfferDetail {
	return []model.OfferDetail{
		{Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Price: price, Features: []string{"Logo"}, OfferType: model.OfferTypeBasic},
		{Title: "Standard", Revisions: 5, DeliveryTimeInDays: 7, Price: price.Add(decimal.NewFromInt(50)), Features: []string{"Logo", "Flyer"}, OfferType: model.OfferTypeStandard},
		{Title: "Premium", Revisions: 10, DeliveryTimeInDays: 10, Price: price.Add(decimal.NewFromInt(100)), Features: []string{"Logo", "Flyer", "Card"}, OfferType: model.OfferTypePremium},
	}
}

func TestOfferRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	now := time.Now()
	price := decimal.NewFromInt(100)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO offers").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
	for i := 1; i <= 3; i++ {
		mock.ExpectQuery("INSERT INTO offer_details").
			WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
			WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(i)))
	}
	mock.ExpectCommit()

	offer, err := repo.Create(context.Background(), &model.Offer{
		UserID:      4,
		Title:       "Webdesign",
		Description: "Landing pages",
		Details:     threeDetails(price),
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if offer.ID != 1 || len(offer.Details) != 3 {
		t.Fatalf("unexpected offer: %+v", offer)
	}
	if offer.MinPrice == nil || !offer.MinPrice.Equal(price) {
		t.Fatalf("min price not derived: %v", offer.MinPrice)
	}
	if offer.MinDeliveryTime == nil || *offer.MinDeliveryTime != 5 {
		t.Fatalf("min delivery not derived: %v", offer.MinDeliveryTime)
	}
	if offer.Details[0].ID != 1 || offer.Details[0].OfferID != 1 {
		t.Fatalf("detail identifiers not assigned: %+v", offer.Details[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	now := time.Now()
	price := decimal.NewFromInt(100)

	mock.ExpectQuery("FROM offers WHERE id=").WithArgs(int64(1)).
		WillReturnRows(offerRow(mock, 1, 4, price, 5, now))
	mock.ExpectQuery("FROM offer_details WHERE offer_id=").WithArgs(int64(1)).
		WillReturnRows(detailRow(mock, 11, 1, model.OfferTypeBasic, price, 5))

	offer, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(offer.Details) != 1 || offer.Details[0].Features[0] != "Logo" {
		t.Fatalf("details not loaded: %+v", offer.Details)
	}

	mock.ExpectQuery("FROM offers WHERE id=").WithArgs(int64(404)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	now := time.Now()
	price := decimal.NewFromInt(100)
	creator := int64(4)

	mock.ExpectQuery("SELECT COUNT").WithArgs(creator).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("FROM offers WHERE user_id=").WithArgs(creator, 10).
		WillReturnRows(offerRow(mock, 1, creator, price, 5, now))
	mock.ExpectQuery("FROM offer_details WHERE offer_id = ANY").WithArgs([]int64{1}).
		WillReturnRows(detailRow(mock, 11, 1, model.OfferTypeBasic, price, 5))

	offers, total, err := repo.List(context.Background(), repository.OfferFilter{
		CreatorID: &creator,
		SortBy:    repository.OfferSortUpdatedAt,
		SortDesc:  true,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if total != 1 || len(offers) != 1 {
		t.Fatalf("unexpected page: %d offers, total %d", len(offers), total)
	}
	if len(offers[0].Details) != 1 {
		t.Fatalf("details not attached: %+v", offers[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	now := time.Now()
	oldPrice := decimal.NewFromInt(100)
	newPrice := decimal.NewFromInt(80)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM offers WHERE id=.* FOR UPDATE").WithArgs(int64(1)).
		WillReturnRows(offerRow(mock, 1, 4, oldPrice, 5, now))
	mock.ExpectExec("UPDATE offers SET updated_at=NOW").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM offer_details WHERE offer_id=.* AND offer_type=").
		WithArgs(int64(1), model.OfferTypeBasic).
		WillReturnRows(detailRow(mock, 11, 1, model.OfferTypeBasic, oldPrice, 5))
	mock.ExpectExec("UPDATE offer_details").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM offer_details WHERE offer_id=").WithArgs(int64(1)).
		WillReturnRows(detailRow(mock, 11, 1, model.OfferTypeBasic, newPrice, 5))
	mock.ExpectExec("UPDATE offers SET min_price=").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM offers WHERE id=").WithArgs(int64(1)).
		WillReturnRows(offerRow(mock, 1, 4, newPrice, 5, now))
	mock.ExpectCommit()

	title := "Relaunch"
	offer, err := repo.Update(context.Background(), 1, repository.OfferPatch{
		Title: &title,
		Details: []repository.OfferDetailPatch{{
			OfferType: model.OfferTypeBasic,
			Price:     &newPrice,
		}},
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if offer.MinPrice == nil || !offer.MinPrice.Equal(newPrice) {
		t.Fatalf("min price not rederived: %v", offer.MinPrice)
	}
	if len(offer.Details) != 1 || !offer.Details[0].Price.Equal(newPrice) {
		t.Fatalf("details not reloaded: %+v", offer.Details)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryUpdateMissing(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM offers WHERE id=.* FOR UPDATE").WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	if _, err := repo.Update(context.Background(), 404, repository.OfferPatch{}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	mock.ExpectExec("DELETE FROM offers").WithArgs(int64(1)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	mock.ExpectExec("DELETE FROM offers").WithArgs(int64(1)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOfferRepositoryGetDetail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Offers()

	price := decimal.NewFromInt(100)
	mock.ExpectQuery("FROM offer_details WHERE id=").WithArgs(int64(11)).
		WillReturnRows(detailRow(mock, 11, 1, model.OfferTypePremium, price, 10))

	detail, err := repo.GetDetail(context.Background(), 11)
	if err != nil {
		t.Fatalf("get detail returned error: %v", err)
	}
	if detail.OfferType != model.OfferTypePremium || !detail.Price.Equal(price) {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	mock.ExpectQuery("FROM offer_details WHERE id=").WithArgs(int64(404)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetDetail(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
