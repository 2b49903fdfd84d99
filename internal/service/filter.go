package service

import (
	"strconv"
	"strings"

	"github.com/jjenkins/clients/internal/model"
)

// Filter returns the records matching the type filter and search term, in input order.
// The search term is matched case-insensitively against name, email and the decimal id.
// A blank term matches everything; otherwise surrounding spaces are part of the term.
func Filter(records []model.ClientRecord, typeFilter model.TypeFilter, searchTerm string) []model.ClientRecord {
	term := ""
	if strings.TrimSpace(searchTerm) != "" {
		term = strings.ToLower(searchTerm)
	}

	result := make([]model.ClientRecord, 0, len(records))
	for _, r := range records {
		if typeFilter != model.FilterAll && typeFilter != "" && string(r.Type) != string(typeFilter) {
			continue
		}
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		result = append(result, r)
	}

	return result
}

func matchesSearch(r model.ClientRecord, term string) bool {
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Email), term) ||
		strings.Contains(strconv.Itoa(r.ID), term)
}
