package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/jjenkins/clients/internal/model"
)

func newTestCriteria(t *testing.T, fieldNames ...string) *Criteria {
	t.Helper()
	c := NewCriteria(model.DefaultCatalogue(), WithIDFunc(counterIDs()))
	for _, f := range fieldNames {
		if _, err := c.Add(f); err != nil {
			t.Fatalf("Add(%q) error = %v", f, err)
		}
	}
	return c
}

func TestCriteriaAdd(t *testing.T) {
	c := newTestCriteria(t)

	got, err := c.Add("name")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Field != "name" || got[0].Direction != model.Ascending || got[0].ID != "name-1" {
		t.Errorf("got %+v", got[0])
	}

	got, err = c.Add("id")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !slices.Equal(fields(got), []string{"name", "id"}) {
		t.Errorf("fields = %v, want [name id]", fields(got))
	}
}

func TestCriteriaAddDuplicate(t *testing.T) {
	c := newTestCriteria(t, "name")
	before := c.Snapshot()

	got, err := c.Add("name")

	var dup *DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("Add() error = %v, want DuplicateFieldError", err)
	}
	if dup.Field != "name" {
		t.Errorf("dup.Field = %q", dup.Field)
	}
	if !slices.Equal(got, before) || !slices.Equal(c.Snapshot(), before) {
		t.Error("duplicate add changed the criteria")
	}
}

func TestCriteriaAddUnknownField(t *testing.T) {
	c := newTestCriteria(t)

	_, err := c.Add("phone")

	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("Add() error = %v, want UnknownFieldError", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCriteriaAddRemoveInverse(t *testing.T) {
	c := newTestCriteria(t, "name", "id")
	before := c.Snapshot()

	added, err := c.Add("email")
	if err != nil {
		t.Fatal(err)
	}
	got := c.Remove(added[len(added)-1].ID)

	if !slices.Equal(got, before) {
		t.Errorf("Add then Remove = %v, want %v", got, before)
	}
}

func TestCriteriaRemove(t *testing.T) {
	c := newTestCriteria(t, "name", "id", "email")

	got := c.Remove("id-2")
	if !slices.Equal(fields(got), []string{"name", "email"}) {
		t.Errorf("fields = %v, want [name email]", fields(got))
	}

	got = c.Remove("missing")
	if !slices.Equal(fields(got), []string{"name", "email"}) {
		t.Errorf("Remove(unknown) changed criteria: %v", fields(got))
	}
}

func TestCriteriaToggleDirection(t *testing.T) {
	c := newTestCriteria(t, "name", "id")

	got := c.ToggleDirection("id-2")
	if got[1].Direction != model.Descending || got[0].Direction != model.Ascending {
		t.Errorf("after toggle: %+v", got)
	}

	got = c.ToggleDirection("id-2")
	if got[1].Direction != model.Ascending {
		t.Errorf("second toggle: %+v", got[1])
	}
	if got[1].ID != "id-2" {
		t.Errorf("toggle changed id to %q", got[1].ID)
	}

	before := c.Snapshot()
	if got := c.ToggleDirection("missing"); !slices.Equal(got, before) {
		t.Error("ToggleDirection(unknown) changed criteria")
	}
}

func TestCriteriaReorder(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		target string
		want   []string
	}{
		{"move down", "name-1", "email-3", []string{"id", "email", "name", "status"}},
		{"move up", "status-4", "id-2", []string{"name", "status", "id", "email"}},
		{"adjacent", "id-2", "email-3", []string{"name", "email", "id", "status"}},
		{"to front", "email-3", "name-1", []string{"email", "name", "id", "status"}},
		{"same id", "id-2", "id-2", []string{"name", "id", "email", "status"}},
		{"unknown id", "nope", "id-2", []string{"name", "id", "email", "status"}},
		{"unknown target", "id-2", "nope", []string{"name", "id", "email", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCriteria(t, "name", "id", "email", "status")
			got := c.Reorder(tt.id, tt.target)
			if !slices.Equal(fields(got), tt.want) {
				t.Errorf("Reorder(%q, %q) = %v, want %v", tt.id, tt.target, fields(got), tt.want)
			}
		})
	}
}

func TestCriteriaMove(t *testing.T) {
	c := newTestCriteria(t, "name", "id", "email")

	got := c.Move("email-3", -1)
	if !slices.Equal(fields(got), []string{"name", "email", "id"}) {
		t.Errorf("Move up = %v", fields(got))
	}

	got = c.Move("name-1", -1)
	if !slices.Equal(fields(got), []string{"name", "email", "id"}) {
		t.Errorf("Move first up = %v, want unchanged", fields(got))
	}

	got = c.Move("name-1", 5)
	if !slices.Equal(fields(got), []string{"email", "id", "name"}) {
		t.Errorf("Move clamped down = %v", fields(got))
	}
}

func TestCriteriaClear(t *testing.T) {
	c := newTestCriteria(t, "name", "id")

	if got := c.Clear(); len(got) != 0 {
		t.Errorf("Clear() = %v, want empty", got)
	}
	if _, err := c.Add("name"); err != nil {
		t.Errorf("Add after Clear error = %v", err)
	}
}

func TestCriteriaSnapshotIsolation(t *testing.T) {
	c := newTestCriteria(t, "name")

	snap := c.Snapshot()
	snap[0].Direction = model.Descending

	if got := c.Snapshot(); len(got) != 1 || got[0].Direction != model.Ascending {
		t.Errorf("model affected by snapshot mutation: %+v", got)
	}

	// an old snapshot must not change when the model does
	old := c.Snapshot()
	c.ToggleDirection(old[0].ID)
	if old[0].Direction != model.Ascending {
		t.Error("ToggleDirection mutated an earlier snapshot")
	}
}

func TestCriteriaLookup(t *testing.T) {
	c := newTestCriteria(t, "name")

	if sc, err := c.Lookup("name-1"); err != nil || sc.Field != "name" {
		t.Errorf("Lookup(name-1) = %+v, %v", sc, err)
	}

	_, err := c.Lookup("gone")
	var unknown *UnknownIDError
	if !errors.As(err, &unknown) || unknown.ID != "gone" {
		t.Errorf("Lookup(gone) error = %v, want UnknownIDError", err)
	}
}

func TestNewCriterionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewCriterionID("name")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRestoreCriteria(t *testing.T) {
	snapshot := []model.SortCriterion{
		{ID: "a", Field: "name", Direction: model.Descending},
		{ID: "b", Field: "phone", Direction: model.Ascending},
		{ID: "c", Field: "name", Direction: model.Ascending},
		{ID: "a", Field: "id", Direction: model.Ascending},
		{ID: "d", Field: "email", Direction: "sideways"},
	}

	got := RestoreCriteria(model.DefaultCatalogue(), snapshot).Snapshot()

	want := []model.SortCriterion{
		{ID: "a", Field: "name", Direction: model.Descending},
		{ID: "d", Field: "email", Direction: model.Ascending},
	}
	if !slices.Equal(got, want) {
		t.Errorf("RestoreCriteria() = %+v, want %+v", got, want)
	}
}

func TestParseSortSpec(t *testing.T) {
	c, err := ParseSortSpec(model.DefaultCatalogue(), "name:asc, id:desc,createdAt", WithIDFunc(counterIDs()))
	if err != nil {
		t.Fatalf("ParseSortSpec() error = %v", err)
	}

	if got := c.String(); got != "name:asc,id:desc,createdAt:asc" {
		t.Errorf("String() = %q", got)
	}

	empty, err := ParseSortSpec(model.DefaultCatalogue(), "")
	if err != nil || empty.Len() != 0 {
		t.Errorf("empty spec = %v, %v", empty.Snapshot(), err)
	}

	for _, bad := range []string{"name,name", "phone", "name:up"} {
		if _, err := ParseSortSpec(model.DefaultCatalogue(), bad); err == nil {
			t.Errorf("ParseSortSpec(%q) expected error", bad)
		}
	}
}
