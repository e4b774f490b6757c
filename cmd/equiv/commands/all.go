package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/services"
)

// all <category> <from> <value>: convert into every other unit.
func allCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "all <category> <from> <value>",
		Short:   "Convert a value into every other unit of a category",
		Example: "  equiv all mass 0 1",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := models.Category(args[0])
			if err := a.ensureCategory(cmd.Context(), category); err != nil {
				return err
			}
			src, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			entries := a.converter.ConvertAllText(models.ConvertAllRequest{
				Category:    category,
				SourceIndex: src,
				Value:       args[2],
				Scientific:  a.scientific,
			})
			if len(entries) == 0 {
				return services.ErrNoResult
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				value := e.Value
				if value == "" {
					value = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, value, e.Symbol)
			}
			return w.Flush()
		},
	}
}
