package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjenkins/clients/internal/config"
)

var cfgPath string
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "clients",
	Short: "Browse, filter and sort a client list",
	Long: `Clients serves a browser-rendered client list that can be filtered by
client type and free-text search, and sorted by an ordered list of
user-editable sort criteria.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default ./clients.yaml)")
}
