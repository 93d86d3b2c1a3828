// Package commands holds the CLI commands added next to PocketBase's own.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gardenquote/services"
)

// NewPriceListCommand writes the catalog tariff sheet to a PDF file.
func NewPriceListCommand(q *services.Quoter) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pricelist",
		Short: "Write the catalog price list as a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := services.GeneratePriceListPDF(q.PriceListData())
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Price list written to %s (%d items)\n", out, len(q.Catalog))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "tarifs.pdf", "output file")
	return cmd
}
