package handlers

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/clients/internal/service"
	"github.com/jjenkins/clients/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the current filtered and sorted view as a spreadsheet.
// An explicit ?sort= spec replaces the session criteria for this download only.
func ExportHandler(source store.RecordSource, ws *Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := ws.load(c)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading session")
		}
		if err := ws.save(st); err != nil {
			log.Printf("Error saving session: %v", err)
		}

		// query overrides apply to this download only
		applyFilterQuery(c, &st.filter)

		if spec := c.Query("sort"); spec != "" {
			criteria, err := service.ParseSortSpec(ws.catalogue, spec, ws.opts...)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).SendString(err.Error())
			}
			st.criteria = criteria
		}

		view, err := buildView(c, source, ws, st)
		if err != nil {
			log.Printf("Error loading clients: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading clients")
		}

		var buf bytes.Buffer
		if err := service.WriteXLSX(&buf, view.Rows, ws.catalogue); err != nil {
			log.Printf("Error exporting clients: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error exporting clients")
		}

		c.Attachment("clients.xlsx")
		c.Set(fiber.HeaderContentType, xlsxContentType)
		return c.Send(buf.Bytes())
	}
}
