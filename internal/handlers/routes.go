package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/clients/internal/store"
)

// Register mounts every route of the client list on app
func Register(app *fiber.App, source store.RecordSource, ws *Workspace) {
	app.Get("/", HomeHandler(source))

	app.Get("/clients", ClientsHandler(source, ws))
	app.Get("/clients/table", ClientsTableHandler(source, ws))
	app.Get("/clients/export.xlsx", ExportHandler(source, ws))

	// Sort intents
	app.Post("/clients/sort", AddSortHandler(source, ws))
	app.Post("/clients/sort/clear", ClearSortHandler(source, ws))
	app.Post("/clients/sort/reorder", ReorderSortHandler(source, ws))
	app.Post("/clients/sort/:id/toggle", ToggleSortHandler(source, ws))
	app.Post("/clients/sort/:id/remove", RemoveSortHandler(source, ws))
	app.Post("/clients/sort/:id/up", MoveSortHandler(source, ws, -1))
	app.Post("/clients/sort/:id/down", MoveSortHandler(source, ws, 1))
}
