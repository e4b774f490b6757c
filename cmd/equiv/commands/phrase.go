package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/equiv/internal/formatter"
	"github.com/sbilibin2017/equiv/internal/services"
)

// phrase <value> <from> <to>: convert between two unit names.
func phraseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "phrase <value> <from> <to>",
		Short:   "Convert between two free-text unit names",
		Example: "  equiv phrase 5 miles km\n  equiv phrase 100 fahrenheit celsius",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := formatter.ParseValue(args[0])
			if !ok {
				return fmt.Errorf("value must be a number: %q", args[0])
			}

			text, err := a.converter.ConvertPhrase(value, args[1], args[2])
			if err != nil {
				var unresolved *services.UnresolvedUnitError
				if errors.As(err, &unresolved) {
					return fmt.Errorf("%w. %s", err, unresolved.Hint)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
