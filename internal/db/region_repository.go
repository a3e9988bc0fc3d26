package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RegionRepository struct {
	pool *pgxpool.Pool
}

func NewRegionRepository(pool *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{pool: pool}
}

func (r *RegionRepository) Exists(ctx context.Context, region string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM region WHERE region_name = $1)", region,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query region %q: %w", region, err)
	}

	return exists, nil
}
