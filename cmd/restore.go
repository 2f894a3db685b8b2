package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// restoreCmd restores the newest order snapshot of a folder.
var restoreCmd = &cobra.Command{
	Use:   "restore <folder>",
	Short: "Restore the newest order snapshot of a folder",
	Long: `Reorders a folder to the newest snapshot taken before a reorder and writes
the positions that differ. Requires snapshot storage.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		folder := args[0]

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		snap, err := rt.snapshots.Latest(ctx, folder)
		if err != nil {
			return err
		}
		rt.logger.Info("Newest snapshot",
			zap.String("key", snap.Key),
			zap.Time("taken_at", snap.TakenAt),
			zap.Int("items", len(snap.Items)))

		if _, err := rt.sorter.Open(ctx, folder); err != nil {
			return err
		}
		if !confirmAction(fmt.Sprintf("%s will be reordered to the snapshot.", folder)) {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		report, err := rt.sorter.Restore(ctx, folder, "")
		if err != nil {
			return err
		}
		return reportResult(rt.logger, report)
	},
}

func init() {
	restoreCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")
	RootCmd.AddCommand(restoreCmd)
}
