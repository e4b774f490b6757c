package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/services"
)

// resolve <text...>: look up a unit by name, symbol or abbreviation.
func resolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <text...>",
		Short:   "Look up a unit by free-text name",
		Example: "  equiv resolve square feet",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			ref, ok := catalog.Resolve(text)
			if !ok {
				err := &services.UnresolvedUnitError{Text: text, Hint: services.SourceUnitHint}
				return fmt.Errorf("%w. %s", err, err.Hint)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", ref.Category, ref.UnitIndex, ref.Symbol)
			return nil
		},
	}
}
