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

func HomeHandler(source store.RecordSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary := service.Summary{}

		records, err := source.GetAll(c.UserContext())
		if err != nil {
			log.Printf("Error loading clients: %v", err)
		} else {
			summary = service.Summarize(records)
		}

		page := templates.Home(summary)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}
