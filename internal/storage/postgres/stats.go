package postgres

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
)

func (r *statsRepository) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	const query = `SELECT
                     (SELECT COUNT(*) FROM reviews),
                     (SELECT COALESCE(AVG(rating), 0) FROM reviews),
                     (SELECT COUNT(*) FROM users WHERE role='business'),
                     (SELECT COUNT(*) FROM offers)`
	var info model.BaseInfo
	err := r.storage.pool.QueryRow(ctx, query).Scan(
		&info.ReviewCount, &info.AverageRating, &info.BusinessProfileCount, &info.OfferCount)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
