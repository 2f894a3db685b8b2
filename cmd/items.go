package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"asset-sorter/core/columns"
	"asset-sorter/core/reconcile"
	"asset-sorter/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemsCmd prints the current order of a folder.
var itemsCmd = &cobra.Command{
	Use:   "items <folder>",
	Short: "List the assets of a folder in persisted order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		items, err := rt.sorter.Open(ctx, args[0])
		if err != nil {
			return err
		}

		rt.logger.Info("Folder loaded", zap.String("folder", args[0]), zap.Int("items", len(items)))
		printItems(items, rt.cfg.Host.Columns)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemsCmd)
}

// printItems writes items as a table. Without explicit columns every
// display field found on the items is shown, sorted by name.
func printItems(items []reconcile.Item, cols []string) {
	if len(cols) == 0 || (len(cols) == 1 && cols[0] == columns.All) {
		seen := map[string]struct{}{}
		cols = nil
		for _, it := range items {
			for k := range it.DisplayFields {
				if _, ok := seen[k]; !ok {
					seen[k] = struct{}{}
					cols = append(cols, k)
				}
			}
		}
		sort.Strings(cols)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "INDEX\tID\tPOSITION")
	for _, col := range cols {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for i, it := range items {
		pos := "-"
		if it.Position > 0 {
			pos = strconv.Itoa(it.Position)
		}
		fmt.Fprintf(w, "%d\t%s\t%s", i, it.ID, pos)
		for _, col := range cols {
			fmt.Fprintf(w, "\t%s", utils.ToString(it.DisplayFields[col]))
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}
