package domain

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	clone := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clone.AddAttrs(attr)
		return true
	})
	h.records = append(h.records, clone)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

type stubFillerService struct {
	runFn func(context.Context, FillInput) (Summary, error)
}

func (s stubFillerService) Run(ctx context.Context, input FillInput) (Summary, error) {
	if s.runFn == nil {
		return Summary{}, nil
	}
	return s.runFn(ctx, input)
}

func TestLoggingFillerServiceLogsSummary(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingFillerService(logger, stubFillerService{
		runFn: func(_ context.Context, _ FillInput) (Summary, error) {
			return Summary{Total: 100, Inserted: 60, Skipped: 40}, nil
		},
	})

	_, err := service.Run(context.Background(), fillInput("us-east-1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelInfo || handler.records[0].Message != "fill run complete" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestLoggingFillerServiceLogsErrors(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingFillerService(logger, stubFillerService{
		runFn: func(_ context.Context, _ FillInput) (Summary, error) {
			return Summary{}, ErrUnknownRegion
		},
	})

	_, err := service.Run(context.Background(), fillInput("nowhere-1"))
	if !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelError || handler.records[0].Message != "fill run failed" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestNewLoggingFillerServiceReturnsNextWhenLoggerNil(t *testing.T) {
	called := false
	next := stubFillerService{
		runFn: func(_ context.Context, _ FillInput) (Summary, error) {
			called = true
			return Summary{Total: 7}, nil
		},
	}
	wrapped := NewLoggingFillerService(nil, next)
	summary, err := wrapped.Run(context.Background(), fillInput("us-east-1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected wrapped service to delegate to next")
	}
	if summary.Total != 7 {
		t.Fatalf("unexpected summary total: %d", summary.Total)
	}
}
