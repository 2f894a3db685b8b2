package cmd

import (
	"fmt"

	"asset-sorter/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	moveFrom   int
	moveTo     int
	moveDryRun bool
)

// moveCmd moves one asset within a folder and persists the new order.
var moveCmd = &cobra.Command{
	Use:   "move <folder>",
	Short: "Move an asset to another index and persist the order",
	Long: `Moves the asset at index --from to index --to (both 0-based, as listed by
"items") and writes the explicit sort order of every asset whose position changed.

Examples:
  # Show which positions would change
  move /Demo --from 4 --to 0 --dry-run

  # Move with auto-confirm (non-interactive)
  move /Demo --from 4 --to 0 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		folder := args[0]

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		if _, err := rt.sorter.Open(ctx, folder); err != nil {
			return err
		}
		if err := rt.sorter.Apply(folder, moveFrom, moveTo); err != nil {
			return err
		}

		changes, err := rt.sorter.Plan(folder)
		if err != nil {
			return err
		}
		printChanges(rt.logger, changes)

		if len(changes) == 0 {
			rt.logger.Info("Order already persisted, nothing to write.")
			return nil
		}
		if moveDryRun {
			rt.logger.Info("Dry-run mode: No changes were made.")
			return nil
		}
		if !confirmAction(fmt.Sprintf("%d positions will be rewritten.", len(changes))) {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		report, err := rt.sorter.Reconcile(ctx, folder, "")
		if err != nil {
			return err
		}
		return reportResult(rt.logger, report)
	},
}

func init() {
	moveCmd.Flags().IntVar(&moveFrom, "from", 0, "Current index of the asset")
	moveCmd.Flags().IntVar(&moveTo, "to", 0, "Target index of the asset")
	moveCmd.Flags().BoolVar(&moveDryRun, "dry-run", false, "Show the changed positions without writing them")
	moveCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")
	_ = moveCmd.MarkFlagRequired("from")
	_ = moveCmd.MarkFlagRequired("to")

	RootCmd.AddCommand(moveCmd)
}

// printChanges logs a changed set, showing at most 10 entries.
func printChanges(l *zap.Logger, changes []reconcile.Change) {
	l.Info("Pending changes", zap.Int("count", len(changes)))

	maxShow := min(len(changes), 10)
	for _, c := range changes[:maxShow] {
		l.Info("Position change",
			zap.String("item", c.ItemID),
			zap.Int("from", c.From),
			zap.Int("to", c.To))
	}
	if len(changes) > maxShow {
		l.Info("Additional changes not shown", zap.Int("count", len(changes)-maxShow))
	}
}

// reportResult logs a reconcile report and turns failures into an error.
func reportResult(l *zap.Logger, report *reconcile.Report) error {
	for _, f := range report.Failures {
		l.Error("Position update failed", zap.String("item", f.ItemID), zap.Error(f.Err))
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d position updates failed", len(report.Failures), len(report.Changes))
	}
	l.Info("Order persisted", zap.Int("updated", report.Updated()))
	return nil
}
