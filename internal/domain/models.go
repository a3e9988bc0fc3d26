package domain

import "time"

// PlaceholderTimestamp is the fixed timestamp stamped on every inserted
// inventory row. Rows keep it until an allocation touches them.
var PlaceholderTimestamp = time.Unix(0, 0).UTC()

// AddressRecord is one host address to insert into the regional inventory.
type AddressRecord struct {
	Region    string
	Address   uint32
	Timestamp time.Time
	InUse     bool
}

// Batch is a contiguous slice of records assigned to one concurrent worker.
type Batch struct {
	Index   int
	Records []AddressRecord
}

// InsertOutcome is the per-batch result of a load.
type InsertOutcome struct {
	Inserted int
	Skipped  int
}

// Summary aggregates all batch outcomes for one run.
type Summary struct {
	Total         int
	Inserted      int
	Skipped       int
	FailedBatches int
}

// Progress is reported after every chunk write within a batch.
type Progress struct {
	Batch    int
	Written  int
	Total    int
	Inserted int
	Skipped  int
}

type ProgressFunc func(Progress)

// NewAddressRecords wraps raw addresses into inventory records for a region.
func NewAddressRecords(region string, addresses []uint32) []AddressRecord {
	records := make([]AddressRecord, 0, len(addresses))
	for _, addr := range addresses {
		records = append(records, AddressRecord{
			Region:    region,
			Address:   addr,
			Timestamp: PlaceholderTimestamp,
			InUse:     false,
		})
	}
	return records
}
