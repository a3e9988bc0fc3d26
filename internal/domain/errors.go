package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrEmptyInput    = errors.New("empty input")
	ErrUnknownRegion = errors.New("unknown region")
)

// LoadError reports a storage failure partway through a batch. It carries the
// counts committed before the failure; those chunks are not rolled back.
type LoadError struct {
	Batch    int
	Inserted int
	Skipped  int
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("batch %d failed after %d inserted, %d skipped: %v", e.Batch, e.Inserted, e.Skipped, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
