package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/services"
)

// convert <category> <from> <to> <value>: convert between two unit indices.
func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <category> <from> <to> <value>",
		Short:   "Convert a value between two units of a category",
		Example: "  equiv convert length 0 1 1000\n  equiv convert temperature 0 1 -- -40",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := models.Category(args[0])
			if err := a.ensureCategory(cmd.Context(), category); err != nil {
				return err
			}
			src, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			dst, err := parseIndex(args[2])
			if err != nil {
				return err
			}

			res := a.converter.ConvertText(models.ConversionRequest{
				Category:         category,
				SourceIndex:      src,
				DestinationIndex: dst,
				Value:            args[3],
				Scientific:       a.scientific,
			})
			if res.Result == "" {
				return services.ErrNoResult
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.ShareText)
			return nil
		},
	}
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unit index must be an integer: %q", s)
	}
	return i, nil
}
