package service

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jjenkins/clients/internal/store"
)

// ImportStats tracks import statistics
type ImportStats struct {
	Total     int
	Imported  int
	Changed   int
	Unchanged int
	Failed    int
}

// Importer loads client lists into the SQL record store
type Importer struct {
	client    *FeedClient
	parser    *Parser
	store     *store.ClientStore
	logger    *log.Logger
	errLogger *log.Logger
}

// NewImporter creates a new Importer
func NewImporter(client *FeedClient, parser *Parser, clientStore *store.ClientStore) *Importer {
	return &Importer{
		client:    client,
		parser:    parser,
		store:     clientStore,
		logger:    log.New(os.Stdout, "", log.LstdFlags),
		errLogger: log.New(os.Stderr, "ERROR: ", log.LstdFlags),
	}
}

// ImportFile imports the client list stored in a local JSON file
func (i *Importer) ImportFile(ctx context.Context, path string) (*ImportStats, error) {
	i.logger.Printf("Reading client list from %s...", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return i.Import(ctx, content)
}

// ImportURL imports the client list served by a remote feed
func (i *Importer) ImportURL(ctx context.Context, url string) (*ImportStats, error) {
	i.logger.Printf("Fetching client list from %s...", url)
	content, err := i.client.FetchClients(ctx, url)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, content)
}

// Import parses a client list document and upserts every record whose content changed
func (i *Importer) Import(ctx context.Context, content []byte) (*ImportStats, error) {
	result, err := i.parser.Parse(content)
	if err != nil {
		return nil, err
	}

	if err := i.store.CreateSchema(ctx); err != nil {
		return nil, err
	}

	stats := &ImportStats{Total: len(result.Records)}
	i.logger.Printf("Found %d clients to process", stats.Total)

	for idx, pr := range result.Records {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		progress := fmt.Sprintf("[%d/%d]", idx+1, stats.Total)

		existing, found, err := i.store.GetChecksum(ctx, pr.Record.ID)
		if err != nil {
			i.errLogger.Printf("%s Failed to check client %d: %v", progress, pr.Record.ID, err)
			stats.Failed++
			continue
		}

		if found && existing == pr.Checksum {
			stats.Unchanged++
			continue
		}

		if err := i.store.Upsert(ctx, pr.Record, pr.Checksum); err != nil {
			i.errLogger.Printf("%s Failed to import client %d: %v", progress, pr.Record.ID, err)
			stats.Failed++
			continue
		}

		if found {
			i.logger.Printf("%s Updated client %d: %s", progress, pr.Record.ID, pr.Record.Name)
			stats.Changed++
		} else {
			i.logger.Printf("%s Imported client %d: %s", progress, pr.Record.ID, pr.Record.Name)
			stats.Imported++
		}
	}

	return stats, nil
}

// PrintSummary prints import statistics
func (i *Importer) PrintSummary(stats *ImportStats) {
	i.logger.Println("")
	i.logger.Println("=== Import Summary ===")
	i.logger.Printf("Total clients:   %d", stats.Total)
	i.logger.Printf("New:             %d", stats.Imported)
	i.logger.Printf("Changed:         %d", stats.Changed)
	i.logger.Printf("Unchanged:       %d", stats.Unchanged)
	i.logger.Printf("Failed:          %d", stats.Failed)
}
