package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nataas/ipfiller/internal/domain"
)

// InventoryRepository writes into ipaddress_inside_regional. The table
// carries a uniqueness constraint on (region, address); ON CONFLICT DO
// NOTHING turns a duplicate key into a skipped row instead of an error.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

func (r *InventoryRepository) InsertAddresses(ctx context.Context, records []domain.AddressRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var query strings.Builder
	query.WriteString("INSERT INTO ipaddress_inside_regional (region, address, timestamp, inuse) VALUES ")
	args := make([]any, 0, len(records)*4)
	for i, rec := range records {
		if i > 0 {
			query.WriteByte(',')
		}
		n := i * 4
		fmt.Fprintf(&query, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, rec.Region, int64(rec.Address), rec.Timestamp, rec.InUse)
	}
	query.WriteString(" ON CONFLICT (region, address) DO NOTHING")

	tag, err := r.pool.Exec(ctx, query.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("insert addresses: %w", err)
	}

	return tag.RowsAffected(), nil
}
