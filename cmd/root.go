package cmd

import (
	"context"
	"fmt"
	"os"

	"asset-sorter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the asset-sorter entry point. Subcommands share one runtime built
// from the environment by newRuntime.
var RootCmd = &cobra.Command{
	Use:   "asset-sorter",
	Short: "Persist drag-and-drop ordering of DAM folders",
	Long: `asset-sorter keeps the explicit sort order of DAM folders in sync with
what users arrange. Only assets whose position changed are rewritten.

Run "start" for the HTTP API, or use the folder commands directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	err := RootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}
	if l, logErr := logger.New(&logger.Config{Level: "info", Format: "console"}); logErr == nil {
		l.Error("Command failed", zap.String("command", commandPath()), zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func commandPath() string {
	cmd, _, err := RootCmd.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return RootCmd.Name()
	}
	return cmd.CommandPath()
}
