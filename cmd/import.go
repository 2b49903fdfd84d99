package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/clients/internal/config"
	"github.com/jjenkins/clients/internal/service"
	"github.com/jjenkins/clients/internal/store/seed"
)

var importFile string
var importURL string
var importSeed bool

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a client list into the SQL store",
	Long: `Import reads a JSON array of client records and upserts them into the
configured Postgres or SQLite store. Records whose content is unchanged
since the last import are skipped.

Examples:
  # Import from a local file
  ./clients import --file clients.json

  # Import from a remote feed (defaults to feed.url from the config)
  ./clients import --url https://example.com/clients.json

  # Load the built-in client list
  ./clients import --seed`,
	Run: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to a JSON client list")
	importCmd.Flags().StringVarP(&importURL, "url", "u", "", "URL of a JSON client list feed")
	importCmd.Flags().BoolVar(&importSeed, "seed", false, "Import the built-in client list")
}

func runImport(cmd *cobra.Command, args []string) {
	if cfg.Store.Driver == config.DriverMemory {
		log.Fatal("import requires store.driver to be postgres or sqlite")
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	log.Println("Connecting to database...")
	db, clientStore, err := openClientStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	client := service.NewFeedClient(
		service.WithTimeout(cfg.Feed.Timeout),
		service.WithMaxRetries(cfg.Feed.MaxRetries),
	)
	importer := service.NewImporter(client, service.NewParser(), clientStore)

	url := importURL
	if url == "" {
		url = cfg.Feed.URL
	}

	var stats *service.ImportStats
	switch {
	case importSeed:
		stats, err = importer.Import(ctx, seed.Clients)
	case importFile != "":
		stats, err = importer.ImportFile(ctx, importFile)
	case url != "":
		stats, err = importer.ImportURL(ctx, url)
	default:
		log.Fatal("one of --file, --url, --seed or feed.url is required")
	}

	if err != nil {
		if ctx.Err() != nil {
			log.Println("Import cancelled")
			os.Exit(1)
		}
		log.Fatalf("Import failed: %v", err)
	}
	importer.PrintSummary(stats)

	if stats.Failed > 0 {
		os.Exit(1)
	}
}
