package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// rates [--refresh]: print the active currency snapshot.
func ratesCmd(a *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the currency exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRates(cmd.Context(), refresh); err != nil {
				return err
			}

			state := a.rates.GetExchangeRates()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", state.Status)
			if state.LastUpdated != nil {
				fmt.Fprintf(out, "Last updated: %s\n", state.LastUpdated.Local().Format(time.RFC1123))
			}
			if state.Error != "" {
				fmt.Fprintf(out, "Last error: %s\n", state.Error)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, c := range state.Currencies {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Code, c.Name, strconv.FormatFloat(c.Rate, 'f', -1, 64))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "fetch fresh rates even when cached ones exist")
	return cmd
}
