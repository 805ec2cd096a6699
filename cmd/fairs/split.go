package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/fairs/internal/calculator"
	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/service"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		file     string
		currency string
	)
	cmd := &cobra.Command{
		Use:   "split [group-id]",
		Short: "Print who owes what for a group",
		Long:  `split computes the allocation of a stored group, or of a group exported as JSON with --file, and prints each person's share.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				group *models.Group
				store storage.Store
				err   error
			)
			switch {
			case file != "" && len(args) == 0:
				group, err = readGroupFile(file)
			case file == "" && len(args) == 1:
				s, openErr := a.openStore()
				if openErr != nil {
					return openErr
				}
				defer s.Close()
				store = s
				group, err = s.GetGroup(cmd.Context(), args[0])
			default:
				return errors.New("pass either a group ID or --file")
			}
			if err != nil {
				return err
			}

			c, err := a.currency(cmd.Context(), store, currency)
			if err != nil {
				return err
			}
			printAllocation(cmd.OutOrStdout(), group, c)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the group from a JSON file")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code for display, e.g. USD")
	return cmd
}

func readGroupFile(path string) (*models.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in api.Group
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return service.GroupFromAPI(&in)
}

func printAllocation(w io.Writer, g *models.Group, c money.Currency) {
	alloc := calculator.ComputeAllocation(*g)
	fmt.Fprintf(w, "%s (%s)\n\n", g.Name, g.Date)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Subtotal\t%s\n", money.FormatWithSymbol(c.Symbol, alloc.Subtotal))
	fmt.Fprintf(tw, "Tip\t%s\n", money.FormatWithSymbol(c.Symbol, alloc.TipAmount))
	fmt.Fprintf(tw, "Total\t%s\n", money.FormatWithSymbol(c.Symbol, alloc.Total))
	if alloc.HasEqualShare {
		fmt.Fprintf(tw, "Each of %d\t%s\n", g.Headcount, money.FormatWithSymbol(c.Symbol, alloc.EqualShare))
	}
	tw.Flush()

	if len(g.People) == 0 {
		return
	}

	fmt.Fprintln(w)
	settlement := calculator.SettlementSummary(*g)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, p := range g.People {
		status := ""
		if p.IsPaid {
			status = "paid"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.Name,
			money.FormatWithSymbol(c.Symbol, settlement.People[i].Amount),
			strings.Join(calculator.SelectedItemNames(p, g.Items), ", "),
			status,
		)
	}
	// Item selections only have to add up when each person pays for their own.
	if !alloc.HasEqualShare {
		balance := "balanced"
		if !alloc.Balanced {
			balance = "not balanced, " + money.FormatWithSymbol(c.Symbol, alloc.Total.Sub(alloc.TotalAssigned)) + " unassigned"
		}
		fmt.Fprintf(tw, "Assigned\t%s\t%s\t\n", money.FormatWithSymbol(c.Symbol, alloc.TotalAssigned), balance)
	}
	fmt.Fprintf(tw, "Outstanding\t%s\t%d unpaid\t\n", money.FormatWithSymbol(c.Symbol, settlement.Outstanding), settlement.Unpaid)
	tw.Flush()

	if alloc.TipUnassigned {
		fmt.Fprintln(w, "\nWarning: nobody has selected the tip.")
	}
}
