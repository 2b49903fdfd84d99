package service

import (
	"github.com/jjenkins/clients/internal/model"
)

// Summary holds aggregate counts over a set of client records
type Summary struct {
	TotalClients  int
	Individuals   int
	Companies     int
	Active        int
	Inactive      int
	Pending       int
	UnknownStatus int
	HasData       bool
}

// Summarize counts records by type and status
func Summarize(records []model.ClientRecord) Summary {
	s := Summary{
		TotalClients: len(records),
		HasData:      len(records) > 0,
	}

	for _, r := range records {
		switch r.Type {
		case model.ClientIndividual:
			s.Individuals++
		case model.ClientCompany:
			s.Companies++
		}

		switch r.Status {
		case model.StatusActive:
			s.Active++
		case model.StatusInactive:
			s.Inactive++
		case model.StatusPending:
			s.Pending++
		default:
			s.UnknownStatus++
		}
	}

	return s
}
