package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/clients/internal/service"
	"github.com/jjenkins/clients/internal/store"
	"github.com/jjenkins/clients/internal/templates"
)

// intent mutates the criteria of one session
type intent func(c *fiber.Ctx, criteria *service.Criteria)

// sortIntent applies an intent, saves the session and re-renders the workspace.
// Plain form posts are redirected back to the list page.
func sortIntent(source store.RecordSource, ws *Workspace, apply intent) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := ws.load(c)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading session")
		}

		apply(c, st.criteria)

		if err := ws.save(st); err != nil {
			log.Printf("Error saving session: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error saving sort criteria")
		}

		if !isHTMX(c) {
			return c.Redirect("/clients", fiber.StatusSeeOther)
		}

		view, err := buildView(c, source, ws, st)
		if err != nil {
			log.Printf("Error loading clients: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading clients")
		}
		return render(c, templates.Workspace(view, ws.catalogue))
	}
}

// staleID logs an intent that references a criterion the session no longer has
func staleID(criteria *service.Criteria, ids ...string) bool {
	for _, id := range ids {
		if _, err := criteria.Lookup(id); err != nil {
			log.Printf("Ignoring sort intent: %v", err)
			return true
		}
	}
	return false
}

func AddSortHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		field := c.FormValue("field")
		if _, err := criteria.Add(field); err != nil {
			var dup *service.DuplicateFieldError
			var unknown *service.UnknownFieldError
			switch {
			case errors.As(err, &dup), errors.As(err, &unknown):
				log.Printf("Ignoring add sort intent: %v", err)
			default:
				log.Printf("Error adding sort criterion: %v", err)
			}
		}
	})
}

func RemoveSortHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		id := c.Params("id")
		if staleID(criteria, id) {
			return
		}
		criteria.Remove(id)
	})
}

func ToggleSortHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		id := c.Params("id")
		if staleID(criteria, id) {
			return
		}
		criteria.ToggleDirection(id)
	})
}

// ReorderSortHandler commits a drag-and-drop move of criterion id onto target
func ReorderSortHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		id, target := c.FormValue("id"), c.FormValue("target")
		if staleID(criteria, id, target) {
			return
		}
		criteria.Reorder(id, target)
	})
}

// MoveSortHandler moves a criterion one position up (delta -1) or down (delta 1)
func MoveSortHandler(source store.RecordSource, ws *Workspace, delta int) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		id := c.Params("id")
		if staleID(criteria, id) {
			return
		}
		criteria.Move(id, delta)
	})
}

func ClearSortHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return sortIntent(source, ws, func(c *fiber.Ctx, criteria *service.Criteria) {
		criteria.Clear()
	})
}
