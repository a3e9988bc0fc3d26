package domain

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"golang.org/x/sync/errgroup"
)

// FillInput describes one fill run: the expanded range, the range already in
// the inventory, and the region whose inventory receives the delta.
type FillInput struct {
	Wider    netip.Prefix
	Narrower netip.Prefix
	Region   string
}

type FillerService interface {
	Run(ctx context.Context, input FillInput) (Summary, error)
}

// FillerConfig carries the concurrency knobs for a filler service. Zero
// values fall back to the defaults.
type FillerConfig struct {
	BatchCount int
	ChunkSize  int
	Progress   ProgressFunc
}

type fillerService struct {
	regions    RegionRepository
	inventory  InventoryRepository
	batchCount int
	chunkSize  int
	progress   ProgressFunc
}

func NewFillerService(regions RegionRepository, inventory InventoryRepository, cfg FillerConfig) FillerService {
	if cfg.BatchCount < 1 {
		cfg.BatchCount = DefaultBatchCount
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return &fillerService{
		regions:    regions,
		inventory:  inventory,
		batchCount: cfg.BatchCount,
		chunkSize:  cfg.ChunkSize,
		progress:   cfg.Progress,
	}
}

// Run validates the region, computes the address delta, and loads it in
// concurrent batches. A failing batch does not cancel its siblings: every
// batch runs to completion, partial counts are folded into the summary, and
// the first batch error is returned so the caller still exits non-zero.
// Re-running after any failure is safe because inserts are idempotent.
func (s *fillerService) Run(ctx context.Context, input FillInput) (Summary, error) {
	known, err := s.regions.Exists(ctx, input.Region)
	if err != nil {
		return Summary{}, fmt.Errorf("validate region: %w", err)
	}
	if !known {
		return Summary{}, fmt.Errorf("%w: %s", ErrUnknownRegion, input.Region)
	}

	addresses, err := Diff(input.Wider, input.Narrower)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(addresses)}
	if len(addresses) == 0 {
		return summary, nil
	}

	batches, err := Plan(NewAddressRecords(input.Region, addresses), s.batchCount)
	if err != nil {
		return Summary{}, err
	}

	outcomes := make([]InsertOutcome, len(batches))
	failures := make([]error, len(batches))

	// A plain errgroup.Group waits for every worker and never cancels a
	// sibling batch; Wait hands back the first failure.
	var group errgroup.Group
	for _, batch := range batches {
		group.Go(func() error {
			loader := NewLoader(s.inventory, s.chunkSize, s.progress)
			outcome, loadErr := loader.Load(ctx, batch)
			if loadErr != nil {
				var le *LoadError
				if errors.As(loadErr, &le) {
					outcome = InsertOutcome{Inserted: le.Inserted, Skipped: le.Skipped}
				}
				failures[batch.Index] = loadErr
			}
			outcomes[batch.Index] = outcome
			return loadErr
		})
	}
	firstErr := group.Wait()

	for i := range batches {
		summary.Inserted += outcomes[i].Inserted
		summary.Skipped += outcomes[i].Skipped
		if failures[i] != nil {
			summary.FailedBatches++
		}
	}
	return summary, firstErr
}
