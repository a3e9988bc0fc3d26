package domain

import "fmt"

// DefaultBatchCount is the number of concurrent workers used when the caller
// does not override it.
const DefaultBatchCount = 3

// Plan partitions records into batchCount contiguous, near-equal batches. The
// last batch absorbs the remainder when the total does not divide evenly, so
// the union of all batches is always exactly the input. When there are fewer
// records than batches the surplus batches are dropped rather than emitted
// empty.
func Plan(records []AddressRecord, batchCount int) ([]Batch, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no addresses to load", ErrEmptyInput)
	}
	if batchCount < 1 {
		return nil, fmt.Errorf("%w: batch count %d", ErrEmptyInput, batchCount)
	}
	if batchCount > len(records) {
		batchCount = len(records)
	}

	size := len(records) / batchCount
	batches := make([]Batch, 0, batchCount)
	for i := 0; i < batchCount; i++ {
		lo := i * size
		hi := lo + size
		if i == batchCount-1 {
			hi = len(records)
		}
		batches = append(batches, Batch{Index: i, Records: records[lo:hi]})
	}
	return batches, nil
}
