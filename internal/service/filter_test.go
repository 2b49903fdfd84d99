package service

import (
	"slices"
	"testing"

	"github.com/jjenkins/clients/internal/model"
)

func TestFilter(t *testing.T) {
	records := []model.ClientRecord{
		client(1, "Alice Johnson", model.ClientIndividual),
		client(2, "Acme Corporation", model.ClientCompany),
		client(3, "Bob Smith", model.ClientIndividual),
		client(4, "Globex Inc", model.ClientCompany),
		client(17, "Carol White", model.ClientIndividual),
	}
	records[2].Email = "BOB@Example.com"

	tests := []struct {
		name       string
		typeFilter model.TypeFilter
		search     string
		want       []int
	}{
		{"all", model.FilterAll, "", []int{1, 2, 3, 4, 17}},
		{"companies keep input order", model.FilterCompany, "", []int{2, 4}},
		{"individuals", model.FilterIndividual, "", []int{1, 3, 17}},
		{"name is case insensitive", model.FilterAll, "ACME", []int{2}},
		{"email is case insensitive", model.FilterAll, "bob@example", []int{3}},
		{"id substring", model.FilterAll, "7", []int{17}},
		{"whitespace term is absent", model.FilterAll, "   ", []int{1, 2, 3, 4, 17}},
		{"padding is part of the term", model.FilterAll, "  globex ", []int{}},
		{"padded id term", model.FilterAll, " 7", []int{}},
		{"inner space matches", model.FilterAll, "globex inc", []int{4}},
		{"predicates compose", model.FilterIndividual, "o", []int{1, 3, 17}},
		{"type and search exclude", model.FilterCompany, "alice", []int{}},
		{"no match", model.FilterAll, "zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, tt.typeFilter, tt.search))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.typeFilter, tt.search, got, tt.want)
			}
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	if got := Filter(nil, model.FilterCompany, "x"); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := []model.ClientRecord{
		client(1, "A", model.ClientCompany),
		client(2, "B", model.ClientIndividual),
	}
	before := slices.Clone(records)

	Filter(records, model.FilterCompany, "")

	if !slices.Equal(records, before) {
		t.Error("Filter modified its input")
	}
}

func TestFilterMatchesOnlyID(t *testing.T) {
	records := []model.ClientRecord{{ID: 17, Name: "Zed", Email: "zed@x.org", Type: model.ClientIndividual}}

	got := Filter(records, model.FilterAll, "7")
	if len(got) != 1 || got[0].ID != 17 {
		t.Errorf("Filter(id 17, \"7\") = %v, want the record", got)
	}
}
