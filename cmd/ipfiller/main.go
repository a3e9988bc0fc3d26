// Command ipfiller loads the host addresses exposed by a network range
// expansion into the regional IP inventory. Inserts are idempotent, so the
// tool is safe to re-run after any failure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/nataas/ipfiller/internal/app"
	"github.com/nataas/ipfiller/internal/domain"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.Config{Hosts: app.DefaultHosts()}

	cmd := &cobra.Command{
		Use:           "ipfiller",
		Short:         "Bulk load newly available IP addresses into the regional inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Env != "local" && cfg.DBRegion == "" {
				return fmt.Errorf("--db_region is required when --env is not local")
			}
			return app.Run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Env, "env", "dev", "environment (local/dev/stage/prod)")
	cmd.Flags().StringVar(&cfg.APIRegion, "api_region", "", "target region to fill")
	cmd.Flags().StringVar(&cfg.DBRegion, "db_region", "", "region of the credential store")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&cfg.ExpandedCIDR, "expanded_cidr", "172.18.0.0/15", "expanded network range")
	cmd.Flags().StringVar(&cfg.CurrentCIDR, "current_cidr", "172.18.0.0/16", "range already in the inventory")
	cmd.Flags().IntVar(&cfg.Batches, "batches", domain.DefaultBatchCount, "number of concurrent insert batches")
	cmd.Flags().IntVar(&cfg.ChunkSize, "chunk_size", domain.DefaultChunkSize, "rows per insert statement")
	cobra.CheckErr(cmd.MarkFlagRequired("api_region"))

	return cmd
}
