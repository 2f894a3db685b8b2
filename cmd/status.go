package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd sets a status on every asset below a folder.
var statusCmd = &cobra.Command{
	Use:   "status <folder> <status>",
	Short: "Set a status on every asset below a folder",
	Long: `Sets the metadata status of every asset below a folder that does not have it
yet. The status must be one of host.statuses.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		folder, status := args[0], args[1]

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		if !rt.cfg.Host.AllowsStatus(status) {
			return fmt.Errorf("unknown status %q, expected one of %v", status, rt.cfg.Host.Statuses)
		}
		if !confirmAction(fmt.Sprintf("Every asset below %s will be set to %q.", folder, status)) {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		n, err := rt.sorter.SetStatus(ctx, folder, status)
		if err != nil {
			return err
		}
		rt.logger.Info("Status updated", zap.Int("processed", n))
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")
	RootCmd.AddCommand(statusCmd)
}
