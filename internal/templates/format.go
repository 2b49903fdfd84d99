// Package templates renders the HTML pages and HTMX partials of the client list.
package templates

import (
	"net/url"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/service"
)

const dateFormat = "Jan 2, 2006"

var typeOptions = []model.TypeFilter{model.FilterAll, model.FilterIndividual, model.FilterCompany}

type summaryCard struct {
	label string
	value int
}

func summaryCards(s service.Summary) []summaryCard {
	return []summaryCard{
		{"Total clients", s.TotalClients},
		{"Individuals", s.Individuals},
		{"Companies", s.Companies},
		{"Active", s.Active},
		{"Inactive", s.Inactive},
		{"Pending", s.Pending},
		{"Unknown status", s.UnknownStatus},
	}
}

func directionLabel(d model.Direction) string {
	if d == model.Descending {
		return "Descending"
	}
	return "Ascending"
}

// criterionAction is the intent endpoint for one criterion, e.g. /clients/sort/<id>/toggle
func criterionAction(id, verb string) string {
	return "/clients/sort/" + url.PathEscape(id) + "/" + verb
}

func cellText(r model.ClientRecord, field string) string {
	switch field {
	case model.FieldStatus:
		if r.Status == model.StatusUnknown {
			return "Unknown"
		}
	case model.FieldCreatedAt:
		return r.CreatedAt.Format(dateFormat)
	case model.FieldUpdatedAt:
		return r.UpdatedAt.Format(dateFormat)
	}
	return service.FieldText(r, field)
}
