package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/models"
)

// units <category>: list the units of a category with their indices.
func unitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "units <category>",
		Short:   "List the units of a category",
		Example: "  equiv units temperature",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := models.Category(args[0])
			if err := a.ensureCategory(cmd.Context(), category); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, u := range a.converter.Units(category) {
				fmt.Fprintf(w, "%d\t%s\n", i, u.Label())
			}
			return w.Flush()
		},
	}
}
