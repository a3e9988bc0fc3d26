package domain

import "context"

// DefaultChunkSize is the number of records written per storage operation.
const DefaultChunkSize = 100

// Loader writes one batch into the inventory, chunk by chunk. Chunks within a
// batch are sequential; separate Loaders may run concurrently because the
// storage layer's (region, address) uniqueness constraint makes every insert
// idempotent.
type Loader struct {
	inventory InventoryRepository
	chunkSize int
	progress  ProgressFunc
}

func NewLoader(inventory InventoryRepository, chunkSize int, progress ProgressFunc) *Loader {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Loader{
		inventory: inventory,
		chunkSize: chunkSize,
		progress:  progress,
	}
}

func (l *Loader) Load(ctx context.Context, batch Batch) (InsertOutcome, error) {
	var outcome InsertOutcome
	written := 0
	for lo := 0; lo < len(batch.Records); lo += l.chunkSize {
		hi := min(lo+l.chunkSize, len(batch.Records))
		chunk := batch.Records[lo:hi]

		inserted, err := l.inventory.InsertAddresses(ctx, chunk)
		if err != nil {
			return outcome, &LoadError{
				Batch:    batch.Index,
				Inserted: outcome.Inserted,
				Skipped:  outcome.Skipped,
				Err:      err,
			}
		}

		outcome.Inserted += int(inserted)
		outcome.Skipped += len(chunk) - int(inserted)
		written += len(chunk)
		if l.progress != nil {
			l.progress(Progress{
				Batch:    batch.Index,
				Written:  written,
				Total:    len(batch.Records),
				Inserted: outcome.Inserted,
				Skipped:  outcome.Skipped,
			})
		}
	}
	return outcome, nil
}
