package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/jjenkins/clients/internal/model"
)

// Comparator orders two records, returning -1, 0 or 1
type Comparator func(a, b model.ClientRecord) int

type fieldCompare func(a, b model.ClientRecord) int

// fieldKinds maps each sortable field to the way its values are compared
var fieldKinds = func() map[string]model.FieldKind {
	kinds := make(map[string]model.FieldKind)
	for _, f := range model.DefaultCatalogue() {
		kinds[f.Value] = f.Kind
	}
	return kinds
}()

// compareField returns the comparison for a field, or nil if the field is not sortable
func compareField(field string) fieldCompare {
	kind, ok := fieldKinds[field]
	if !ok {
		return nil
	}

	switch kind {
	case model.KindNumeric:
		return func(a, b model.ClientRecord) int {
			return cmp.Compare(a.ID, b.ID)
		}
	case model.KindTemporal:
		get := timeValue(field)
		return func(a, b model.ClientRecord) int {
			return get(a).Compare(get(b))
		}
	default:
		get := textValue(field)
		return func(a, b model.ClientRecord) int {
			return strings.Compare(get(a), get(b))
		}
	}
}

func textValue(field string) func(model.ClientRecord) string {
	switch field {
	case model.FieldName:
		return func(r model.ClientRecord) string { return r.Name }
	case model.FieldType:
		return func(r model.ClientRecord) string { return string(r.Type) }
	case model.FieldEmail:
		return func(r model.ClientRecord) string { return r.Email }
	default:
		// missing status is "" and sorts first
		return func(r model.ClientRecord) string { return string(r.Status) }
	}
}

func timeValue(field string) func(model.ClientRecord) time.Time {
	if field == model.FieldUpdatedAt {
		return func(r model.ClientRecord) time.Time { return r.UpdatedAt }
	}
	return func(r model.ClientRecord) time.Time { return r.CreatedAt }
}

// Compile turns the criteria into a single lexicographic comparator.
// Criteria on unknown fields are skipped. With no criteria every pair compares equal.
func Compile(criteria []model.SortCriterion) Comparator {
	compares := make([]fieldCompare, 0, len(criteria))
	for _, sc := range criteria {
		fc := compareField(sc.Field)
		if fc == nil {
			continue
		}
		if sc.Direction == model.Descending {
			asc := fc
			fc = func(a, b model.ClientRecord) int { return -asc(a, b) }
		}
		compares = append(compares, fc)
	}

	return func(a, b model.ClientRecord) int {
		for _, fc := range compares {
			if c := fc(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// SortStable returns a copy of records ordered by criteria. Ties keep their input order.
func SortStable(records []model.ClientRecord, criteria []model.SortCriterion) []model.ClientRecord {
	sorted := slices.Clone(records)
	if len(criteria) == 0 {
		return sorted
	}

	slices.SortStableFunc(sorted, Compile(criteria))
	return sorted
}
