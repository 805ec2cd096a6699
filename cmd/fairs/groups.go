package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/fairs/internal/calculator"
	"github.com/mmynk/fairs/internal/money"
)

func newGroupsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List groups with their totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := store.ListGroups(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No groups yet.")
				return nil
			}

			c, err := a.currency(cmd.Context(), store, "")
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDATE\tITEMS\tPEOPLE\tTOTAL")
			for _, g := range groups {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
					g.ID, g.Name, g.Date, len(g.Items), len(g.People),
					money.FormatWithSymbol(c.Symbol, calculator.GroupTotal(*g)),
				)
			}
			return tw.Flush()
		},
	}
}
