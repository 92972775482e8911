package usecase

import (
	"context"
	"math"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// StatsUseCase provides the public aggregate rollup.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// BaseInfo returns counts and the average rating rounded to one decimal.
func (u *StatsUseCase) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	info, err := u.stats.BaseInfo(ctx)
	if err != nil {
		return nil, err
	}
	info.AverageRating = math.Round(info.AverageRating*10) / 10
	return info, nil
}
