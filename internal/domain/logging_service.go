package domain

import (
	"context"
	"log/slog"
)

type loggingFillerService struct {
	logger *slog.Logger
	next   FillerService
}

func NewLoggingFillerService(logger *slog.Logger, next FillerService) FillerService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingFillerService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingFillerService) Run(ctx context.Context, input FillInput) (Summary, error) {
	summary, err := s.next.Run(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "fill run failed",
			"region", input.Region,
			"total", summary.Total,
			"inserted", summary.Inserted,
			"skipped", summary.Skipped,
			"failed_batches", summary.FailedBatches,
			"err", err.Error(),
		)
		return summary, err
	}

	s.logger.InfoContext(ctx, "fill run complete",
		"region", input.Region,
		"total", summary.Total,
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
	)
	return summary, nil
}
