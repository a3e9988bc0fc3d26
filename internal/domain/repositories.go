package domain

import "context"

// InventoryRepository writes address records with insert-if-absent semantics
// keyed on (region, address). It returns the number of rows actually created;
// records whose key already exists are silently left untouched.
type InventoryRepository interface {
	InsertAddresses(ctx context.Context, records []AddressRecord) (int64, error)
}

type RegionRepository interface {
	Exists(ctx context.Context, region string) (bool, error)
}
