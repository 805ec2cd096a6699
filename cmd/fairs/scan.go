package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/receipt"
	"github.com/mmynk/fairs/pkg/api"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		groupID string
	)
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Extract bill items from OCR receipt lines",
		Long:  `scan reads recognized receipt text, one line per row, from a file or stdin and prints the candidate items. With --group the candidates are added to that group.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return fmt.Errorf("failed to read receipt text: %w", err)
			}

			result := receipt.Parse(lines)
			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeScanJSON(out, result); err != nil {
					return err
				}
			} else {
				printScan(out, result)
			}

			if groupID == "" || len(result.Items) == 0 {
				return nil
			}
			return a.acceptScanned(cmd, groupID, result.Items)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print candidates as JSON")
	cmd.Flags().StringVar(&groupID, "group", "", "add the candidates to this group")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func printScan(w io.Writer, result receipt.Result) {
	if len(result.Items) == 0 {
		fmt.Fprintln(w, "No items found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPRICE")
	for i, item := range result.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, item.Name, item.Price)
	}
	tw.Flush()
	fmt.Fprintf(w, "strategy: %s\n", result.Strategy)
}

func writeScanJSON(w io.Writer, result receipt.Result) error {
	resp := &api.ParseReceiptLinesResponse{
		Items:    make([]*api.ScannedItem, len(result.Items)),
		Strategy: string(result.Strategy),
	}
	for i, item := range result.Items {
		resp.Items[i] = &api.ScannedItem{Id: item.ID, Name: item.Name, Price: item.Price, Selected: item.Selected}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (a *app) acceptScanned(cmd *cobra.Command, groupID string, items []models.ScannedItem) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var added []models.Item
	_, err = store.EditGroup(cmd.Context(), groupID, func(g *models.Group) error {
		var err error
		added, err = g.AddScannedItems(items)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to add items to group %s: %w", groupID, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d items to group %s.\n", len(added), groupID)
	return nil
}
