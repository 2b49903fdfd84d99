package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/service"
)

var (
	exportOut    string
	exportType   string
	exportSearch string
	exportSort   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered and sorted client list to a spreadsheet",
	Long: `Export writes the client list, filtered and sorted the same way as the
list command, to an .xlsx file.

Example:
  ./clients export --out companies.xlsx --type Company --sort createdAt:desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogue, err := cfg.Catalogue()
		if err != nil {
			return err
		}

		criteria, err := service.ParseSortSpec(catalogue, exportSort)
		if err != nil {
			return err
		}

		ctx := context.Background()
		source, closeSource, err := openSource(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		records, err := source.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load clients: %w", err)
		}

		filter := model.FilterState{Type: model.ParseTypeFilter(exportType), Search: exportSearch}
		view := service.BuildView(records, filter, criteria.Snapshot(), catalogue)

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()

		if err := service.WriteXLSX(f, view.Rows, catalogue); err != nil {
			return err
		}

		log.Printf("Wrote %d of %d clients to %s", view.Showing(), view.Total, exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "clients.xlsx", "Output file")
	exportCmd.Flags().StringVarP(&exportType, "type", "t", "All", "Client type filter (All, Individual, Company)")
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "Search name, email or id")
	exportCmd.Flags().StringVar(&exportSort, "sort", "", "Sort criteria, e.g. name:asc,id:desc")
}
