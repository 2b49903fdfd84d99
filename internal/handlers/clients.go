package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jjenkins/clients/internal/service"
	"github.com/jjenkins/clients/internal/store"
	"github.com/jjenkins/clients/internal/templates"
)

func render(c *fiber.Ctx, component templ.Component) error {
	handler := adaptor.HTTPHandler(templ.Handler(component))
	return handler(c)
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// buildView loads the records and combines them with the session state
func buildView(c *fiber.Ctx, source store.RecordSource, ws *Workspace, st *state) (service.View, error) {
	records, err := source.GetAll(c.UserContext())
	if err != nil {
		return service.View{}, err
	}
	return service.BuildView(records, st.filter, st.criteria.Snapshot(), ws.catalogue), nil
}

func ClientsHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := ws.load(c)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading session")
		}

		applyFilterQuery(c, &st.filter)
		if err := ws.save(st); err != nil {
			log.Printf("Error saving session: %v", err)
		}

		view, err := buildView(c, source, ws, st)
		if err != nil {
			log.Printf("Error loading clients: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading clients")
		}

		if isHTMX(c) {
			return render(c, templates.Workspace(view, ws.catalogue))
		}
		return render(c, templates.ClientsPage(view, ws.catalogue))
	}
}

// ClientsTableHandler serves the table partial targeted by the filter controls
func ClientsTableHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := ws.load(c)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading session")
		}

		applyFilterQuery(c, &st.filter)
		if err := ws.save(st); err != nil {
			log.Printf("Error saving session: %v", err)
		}

		view, err := buildView(c, source, ws, st)
		if err != nil {
			log.Printf("Error loading clients: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading clients")
		}

		return render(c, templates.ClientsTable(view, ws.catalogue))
	}
}
