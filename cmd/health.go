package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"asset-sorter/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// healthCmd checks the host, the snapshot bucket and the history database.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the host, snapshot storage and history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		svc := health.NewService(rt.sorter, rt.store, rt.cfg.Storage.Bucket, rt.db, rt.logger)
		report := svc.Run(ctx)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			rt.logger.Info("Health report",
				zap.String("status", report.Status),
				zap.String("host", report.Host.Status),
				zap.Int64("host_latency_ms", report.Host.LatencyMs),
				zap.String("storage", report.Storage.Status),
				zap.String("database", report.Database.Status))
			if s := report.Database.Schema; s != nil && len(s.MissingColumns) > 0 {
				rt.logger.Warn("History table is missing columns", zap.Strings("columns", s.MissingColumns))
			}
		}

		if report.Status != health.StatusOK {
			return fmt.Errorf("health check %s", report.Status)
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().Bool("json", false, "Print the full report as JSON")
	RootCmd.AddCommand(healthCmd)
}
