package cmd

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jjenkins/clients/internal/handlers"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the client list web server",
	Long: `Start the web server that renders the client list.

Records come from the built-in client list unless store.driver is set to
postgres or sqlite in the config file.

Examples:
  # Serve the built-in client list on port 8080
  ./clients serve

  # Serve clients imported into Postgres
  CLIENTS_STORE_DRIVER=postgres CLIENTS_STORE_DSN=postgres://... ./clients serve -p 3000`,
	Run: func(cmd *cobra.Command, args []string) {
		// Flag wins over config, PORT env var wins only over the default
		if !cmd.Flags().Changed("port") {
			port = cfg.Server.Port
			if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
				port = envPort
			}
		}

		catalogue, err := cfg.Catalogue()
		if err != nil {
			log.Fatalf("Invalid field catalogue: %v", err)
		}

		source, closeSource, err := openSource(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to open client store: %v", err)
		}
		defer closeSource()

		app := fiber.New(fiber.Config{
			AppName: "Clients",
		})

		app.Use(recover.New())
		app.Use(logger.New())

		workspace := handlers.NewWorkspace(catalogue, cfg.Server.SessionExpiration)
		handlers.Register(app, source, workspace)

		log.Printf("Starting server on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
