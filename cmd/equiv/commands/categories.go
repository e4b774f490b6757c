package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/catalog"
)

// categories: list every category in display order.
func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their unit counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range catalog.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%d units\n", c.ID, c.DisplayName, a.converter.UnitCount(c.ID))
			}
			return w.Flush()
		},
	}
}
