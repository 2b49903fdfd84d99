package service

import "github.com/jjenkins/clients/internal/model"

// AvailableFields returns the catalogue entries not yet used by any criterion, in catalogue order
func AvailableFields(catalogue model.Catalogue, criteria []model.SortCriterion) []model.FieldDescriptor {
	used := make(map[string]bool, len(criteria))
	for _, sc := range criteria {
		used[sc.Field] = true
	}

	available := make([]model.FieldDescriptor, 0, len(catalogue))
	for _, f := range catalogue {
		if !used[f.Value] {
			available = append(available, f)
		}
	}

	return available
}
