package repository

import (
	"context"

	"github.com/alexh7799/coderr/internal/domain/model"
)

// StatsRepository provides the read-only aggregate rollup.
type StatsRepository interface {
	BaseInfo(ctx context.Context) (*model.BaseInfo, error)
}
