package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/service"
)

var (
	listType    string
	listSearch  string
	listSort    string
	listSummary bool
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the filtered and sorted client list",
	Long: `List prints the client list after applying the type filter, the search
term and the sort criteria.

Sort criteria are a comma separated list of field[:asc|desc] terms, in
precedence order. Fields: id, name, type, email, status, createdAt, updatedAt.

Examples:
  ./clients list --type Company
  ./clients list --search amy --sort name:asc,id:desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogue, err := cfg.Catalogue()
		if err != nil {
			return err
		}

		criteria, err := service.ParseSortSpec(catalogue, listSort)
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
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if listSummary {
			printSummary(service.Summarize(records))
			return nil
		}

		filter := model.FilterState{Type: model.ParseTypeFilter(listType), Search: listSearch}
		view := service.BuildView(records, filter, criteria.Snapshot(), catalogue)
		printView(view, catalogue)
		return nil
	},
}

func printView(view service.View, catalogue model.Catalogue) {
	if view.Showing() == 0 {
		fmt.Println(mutedStyle.Render("No clients found."))
		return
	}

	widths := make([]int, len(catalogue))
	for i, f := range catalogue {
		widths[i] = len(f.Label)
		for _, r := range view.Rows {
			widths[i] = max(widths[i], len(service.FieldText(r, f.Value)))
		}
		widths[i] += 2
	}

	cols := make([]string, len(catalogue))
	total := 0
	for i, f := range catalogue {
		cols[i] = lipgloss.NewStyle().Width(widths[i]).Render(headerStyle.Render(strings.ToUpper(f.Label)))
		total += widths[i]
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	fmt.Println(mutedStyle.Render(strings.Repeat("─", total)))

	for _, r := range view.Rows {
		for i, f := range catalogue {
			cols[i] = lipgloss.NewStyle().Width(widths[i]).Render(service.FieldText(r, f.Value))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	fmt.Println(mutedStyle.Render(fmt.Sprintf("Showing %d of %d clients", view.Showing(), view.Total)))
}

func printSummary(s service.Summary) {
	fmt.Printf("Total clients:   %d\n", s.TotalClients)
	fmt.Printf("Individuals:     %d\n", s.Individuals)
	fmt.Printf("Companies:       %d\n", s.Companies)
	fmt.Printf("Active:          %d\n", s.Active)
	fmt.Printf("Inactive:        %d\n", s.Inactive)
	fmt.Printf("Pending:         %d\n", s.Pending)
	fmt.Printf("Unknown status:  %d\n", s.UnknownStatus)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listType, "type", "t", "All", "Client type filter (All, Individual, Company)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search name, email or id")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort criteria, e.g. name:asc,id:desc")
	listCmd.Flags().BoolVar(&listSummary, "summary", false, "Print counts by type and status instead of rows")
}
