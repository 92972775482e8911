package test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// RandomUser builds a user with realistic fake profile data.
func RandomUser(role model.Role) *model.User {
	return &model.User{
		Username:     gofakeit.Username(),
		Email:        gofakeit.Email(),
		PasswordHash: "hash:" + gofakeit.Password(true, true, true, false, false, 12),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         role,
		Location:     gofakeit.City(),
		Tel:          gofakeit.Phone(),
		Description:  gofakeit.Sentence(6),
		WorkingHours: "9-17",
	}
}

// RandomDetail builds one pricing tier with fake data.
func RandomDetail(tier model.OfferType) model.OfferDetail {
	return model.OfferDetail{
		Title:              gofakeit.ProductName(),
		Revisions:          int32(gofakeit.Number(1, 10)),
		DeliveryTimeInDays: int32(gofakeit.Number(1, 30)),
		Price:              decimal.NewFromFloat(gofakeit.Price(10, 500)).Round(2),
		Features:           []string{gofakeit.BuzzWord(), gofakeit.BuzzWord()},
		OfferType:          tier,
	}
}

// RandomDetailSet builds one tier of each type.
func RandomDetailSet() []model.OfferDetail {
	return []model.OfferDetail{
		RandomDetail(model.OfferTypeBasic),
		RandomDetail(model.OfferTypeStandard),
		RandomDetail(model.OfferTypePremium),
	}
}
