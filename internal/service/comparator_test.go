package service

import (
	"slices"
	"testing"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/store/seed"
)

func crit(field string, dir model.Direction) model.SortCriterion {
	return model.SortCriterion{ID: field, Field: field, Direction: dir}
}

func TestSortStableTieBreak(t *testing.T) {
	records := []model.ClientRecord{
		client(3, "Bob", model.ClientIndividual),
		client(1, "Amy", model.ClientIndividual),
		client(2, "Amy", model.ClientCompany),
	}
	criteria := []model.SortCriterion{
		crit("name", model.Ascending),
		crit("id", model.Descending),
	}

	got := ids(SortStable(records, criteria))

	if want := []int{2, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("SortStable() = %v, want %v", got, want)
	}
}

func TestSortStableEmptyCriteria(t *testing.T) {
	records := []model.ClientRecord{
		client(3, "C", model.ClientIndividual),
		client(1, "A", model.ClientIndividual),
		client(2, "B", model.ClientCompany),
	}

	got := ids(SortStable(records, nil))
	if want := []int{3, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("SortStable(no criteria) = %v, want input order %v", got, want)
	}

	cmp := Compile(nil)
	if cmp(records[0], records[1]) != 0 {
		t.Error("empty comparator should return 0")
	}
}

func TestSortStableDoesNotMutateInput(t *testing.T) {
	records := []model.ClientRecord{
		client(2, "B", model.ClientIndividual),
		client(1, "A", model.ClientIndividual),
	}

	SortStable(records, []model.SortCriterion{crit("id", model.Ascending)})

	if records[0].ID != 2 {
		t.Error("SortStable reordered its input")
	}
}

func TestCompileFieldKinds(t *testing.T) {
	a := client(9, "beta", model.ClientIndividual)
	b := client(10, "Alpha", model.ClientCompany)
	a.CreatedAt, b.CreatedAt = day(20), day(3)
	a.UpdatedAt, b.UpdatedAt = day(1), day(2)
	a.Status, b.Status = model.StatusPending, model.StatusUnknown
	a.Email, b.Email = "a@x.com", "B@x.com"

	tests := []struct {
		field string
		want  int
	}{
		// numeric, not "9" > "10"
		{"id", -1},
		// case sensitive: "A" < "b"
		{"name", 1},
		{"type", 1},
		{"email", 1},
		// unknown status sorts as ""
		{"status", 1},
		{"createdAt", 1},
		{"updatedAt", -1},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			asc := Compile([]model.SortCriterion{crit(tt.field, model.Ascending)})
			desc := Compile([]model.SortCriterion{crit(tt.field, model.Descending)})

			if got := asc(a, b); got != tt.want {
				t.Errorf("asc(a, b) = %d, want %d", got, tt.want)
			}
			if got := desc(a, b); got != -tt.want {
				t.Errorf("desc(a, b) = %d, want %d", got, -tt.want)
			}
			if got := asc(a, a); got != 0 {
				t.Errorf("asc(a, a) = %d, want 0", got)
			}
		})
	}
}

func TestCompileSkipsUnknownField(t *testing.T) {
	a := client(1, "B", model.ClientIndividual)
	b := client(2, "A", model.ClientIndividual)

	cmp := Compile([]model.SortCriterion{crit("phone", model.Ascending), crit("name", model.Ascending)})
	if got := cmp(a, b); got != 1 {
		t.Errorf("cmp(a, b) = %d, want 1", got)
	}
}

func TestCompileAntisymmetric(t *testing.T) {
	records := seedRecords(t)
	criteria := []model.SortCriterion{
		crit("type", model.Ascending),
		crit("status", model.Descending),
		crit("createdAt", model.Ascending),
	}
	cmp := Compile(criteria)

	for _, a := range records {
		for _, b := range records {
			if cmp(a, b) != -cmp(b, a) {
				t.Fatalf("cmp(%d, %d) = %d but cmp(%d, %d) = %d", a.ID, b.ID, cmp(a, b), b.ID, a.ID, cmp(b, a))
			}
		}
	}
}

func TestSortStableIdempotent(t *testing.T) {
	records := seedRecords(t)
	specs := [][]model.SortCriterion{
		nil,
		{crit("name", model.Ascending)},
		{crit("type", model.Descending), crit("id", model.Ascending)},
		{crit("status", model.Ascending), crit("updatedAt", model.Descending)},
		{crit("type", model.Ascending)},
	}

	for _, criteria := range specs {
		filtered := Filter(records, model.FilterAll, "")
		once := SortStable(filtered, criteria)
		twice := SortStable(once, criteria)
		if !slices.Equal(ids(once), ids(twice)) {
			t.Errorf("%s: sorting twice = %v, once = %v", FormatSortSpec(criteria), ids(twice), ids(once))
		}
	}
}

func TestSortStablePreservesTieOrder(t *testing.T) {
	records := seedRecords(t)

	got := SortStable(records, []model.SortCriterion{crit("type", model.Ascending)})

	// within a type, records keep their input (id) order
	var lastCompany, lastIndividual int
	for _, r := range got {
		last := &lastIndividual
		if r.Type == model.ClientCompany {
			last = &lastCompany
		}
		if r.ID < *last {
			t.Fatalf("record %d after %d within type %s", r.ID, *last, r.Type)
		}
		*last = r.ID
	}
	if got[0].Type != model.ClientCompany {
		t.Errorf("first type = %s, want Company", got[0].Type)
	}
}

func seedRecords(t *testing.T) []model.ClientRecord {
	t.Helper()
	result, err := NewParser().Parse(seed.Clients)
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	return result.ClientRecords()
}
