package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"net/url"
	"os"
	"strings"

	"github.com/nataas/ipfiller/internal/db"
	"github.com/nataas/ipfiller/internal/domain"
	"github.com/nataas/ipfiller/internal/secrets"
)

type Config struct {
	Env          string
	APIRegion    string
	DBRegion     string
	Debug        bool
	ExpandedCIDR string
	CurrentCIDR  string
	Batches      int
	ChunkSize    int

	// Hosts maps an environment name to its "host:port/database" endpoint.
	Hosts map[string]string
}

// DefaultHosts returns the per-environment database endpoints.
func DefaultHosts() map[string]string {
	return map[string]string{
		"local": "localhost:5432/localdevdb",
		"dev":   "devdb-postgres.cluster.eu-west-1.rds.amazonaws.com:5432/devdb",
		"stage": "stagedb-postgres.cluster.us-east-1.rds.amazonaws.com:5432/stagedb",
		"prod":  "proddb-postgres.cluster.us-east-1.rds.amazonaws.com:5432/proddb",
	}
}

// Run wires the loader pipeline and executes one fill: credentials, pool,
// repositories, filler service, summary log.
func Run(ctx context.Context, cfg Config) error {
	logger := newLogger(cfg.Debug)

	wider, err := netip.ParsePrefix(cfg.ExpandedCIDR)
	if err != nil {
		return fmt.Errorf("%w: expanded cidr %q", domain.ErrInvalidRange, cfg.ExpandedCIDR)
	}
	narrower, err := netip.ParsePrefix(cfg.CurrentCIDR)
	if err != nil {
		return fmt.Errorf("%w: current cidr %q", domain.ErrInvalidRange, cfg.CurrentCIDR)
	}

	creds, err := secrets.NewProvider(cfg.Env).Fetch(ctx, cfg.DBRegion)
	if err != nil {
		logger.ErrorContext(ctx, "fetching credentials failed", "env", cfg.Env, "err", err.Error())
		return err
	}

	dsn, err := buildDSN(cfg, creds)
	if err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect to %s database: %w", cfg.Env, err)
	}
	defer pool.Close()

	progress := func(p domain.Progress) {
		logger.DebugContext(ctx, "chunk loaded",
			"batch", p.Batch,
			"written", p.Written,
			"total", p.Total,
			"inserted", p.Inserted,
			"skipped", p.Skipped,
		)
	}

	service := domain.NewLoggingFillerService(logger, domain.NewFillerService(
		db.NewRegionRepository(pool),
		db.NewInventoryRepository(pool),
		domain.FillerConfig{
			BatchCount: cfg.Batches,
			ChunkSize:  cfg.ChunkSize,
			Progress:   progress,
		},
	))

	_, err = service.Run(ctx, domain.FillInput{
		Wider:    wider,
		Narrower: narrower,
		Region:   cfg.APIRegion,
	})
	return err
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func buildDSN(cfg Config, creds secrets.Credentials) (string, error) {
	endpoint, ok := cfg.Hosts[cfg.Env]
	if !ok {
		return "", fmt.Errorf("no database endpoint configured for env %q", cfg.Env)
	}
	host, database, ok := strings.Cut(endpoint, "/")
	if !ok {
		return "", fmt.Errorf("malformed database endpoint %q", endpoint)
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(creds.Username, creds.Password),
		Host:   host,
		Path:   "/" + database,
	}
	if cfg.Env == "local" {
		u.RawQuery = "sslmode=disable"
	}
	return u.String(), nil
}
