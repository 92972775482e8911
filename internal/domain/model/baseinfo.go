package model

// BaseInfo is the public aggregate view over reviews, profiles and offers.
type BaseInfo struct {
	ReviewCount          int64
	AverageRating        float64
	BusinessProfileCount int64
	OfferCount           int64
}
