package service

import "github.com/jjenkins/clients/internal/model"

// CriterionView is a sort criterion with its display label and precedence position (1-based)
type CriterionView struct {
	model.SortCriterion
	Label    string
	Position int
}

// View is everything the client list page renders for one request
type View struct {
	Rows      []model.ClientRecord
	Total     int
	Filter    model.FilterState
	Criteria  []CriterionView
	Available []model.FieldDescriptor
	SortSpec  string
}

// Showing returns the number of rows that survived filtering
func (v View) Showing() int {
	return len(v.Rows)
}

// BuildView filters records, sorts the survivors by criteria and derives the editor state
func BuildView(records []model.ClientRecord, filter model.FilterState, criteria []model.SortCriterion, catalogue model.Catalogue) View {
	filtered := Filter(records, filter.Type, filter.Search)

	views := make([]CriterionView, len(criteria))
	for i, sc := range criteria {
		views[i] = CriterionView{
			SortCriterion: sc,
			Label:         catalogue.Label(sc.Field),
			Position:      i + 1,
		}
	}

	return View{
		Rows:      SortStable(filtered, criteria),
		Total:     len(records),
		Filter:    filter,
		Criteria:  views,
		Available: AvailableFields(catalogue, criteria),
		SortSpec:  FormatSortSpec(criteria),
	}
}
