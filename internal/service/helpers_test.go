package service

import (
	"fmt"
	"time"

	"github.com/jjenkins/clients/internal/model"
)

// counterIDs returns an IDFunc producing field-1, field-2, ...
func counterIDs() IDFunc {
	n := 0
	return func(field string) string {
		n++
		return fmt.Sprintf("%s-%d", field, n)
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC)
}

func client(id int, name string, typ model.ClientType) model.ClientRecord {
	return model.ClientRecord{
		ID:        id,
		Name:      name,
		Type:      typ,
		Email:     fmt.Sprintf("client%d@example.com", id),
		Status:    model.StatusActive,
		CreatedAt: day(id),
		UpdatedAt: day(id + 1),
	}
}

func ids(records []model.ClientRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func fields(criteria []model.SortCriterion) []string {
	out := make([]string, len(criteria))
	for i, sc := range criteria {
		out[i] = sc.Field
	}
	return out
}
