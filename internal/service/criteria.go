package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jjenkins/clients/internal/model"
)

// IDFunc generates a fresh criterion id for a field
type IDFunc func(field string) string

// NewCriterionID builds an id from the field name, the creation time and a random suffix
func NewCriterionID(field string) string {
	return fmt.Sprintf("%s-%d-%s", field, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Criteria is the ordered list of sort criteria. Index 0 has the highest precedence.
// Every mutating method returns a fresh snapshot; callers never share the internal slice.
type Criteria struct {
	catalogue model.Catalogue
	items     []model.SortCriterion
	newID     IDFunc
}

// CriteriaOption configures a Criteria
type CriteriaOption func(*Criteria)

// WithIDFunc replaces the criterion id generator
func WithIDFunc(fn IDFunc) CriteriaOption {
	return func(c *Criteria) {
		c.newID = fn
	}
}

// NewCriteria creates an empty criteria list over the catalogue
func NewCriteria(catalogue model.Catalogue, opts ...CriteriaOption) *Criteria {
	c := &Criteria{
		catalogue: catalogue,
		newID:     NewCriterionID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RestoreCriteria rebuilds a criteria list from a saved snapshot. Entries with fields outside
// the catalogue, duplicate fields or duplicate ids are dropped.
func RestoreCriteria(catalogue model.Catalogue, snapshot []model.SortCriterion, opts ...CriteriaOption) *Criteria {
	c := NewCriteria(catalogue, opts...)

	seenFields := make(map[string]bool)
	seenIDs := make(map[string]bool)
	for _, sc := range snapshot {
		if _, ok := catalogue.Lookup(sc.Field); !ok || seenFields[sc.Field] || seenIDs[sc.ID] || sc.ID == "" {
			continue
		}
		if sc.Direction != model.Descending {
			sc.Direction = model.Ascending
		}
		seenFields[sc.Field] = true
		seenIDs[sc.ID] = true
		c.items = append(c.items, sc)
	}

	return c
}

// Snapshot returns a copy of the current criteria
func (c *Criteria) Snapshot() []model.SortCriterion {
	return slices.Clone(c.items)
}

// Len returns the number of criteria
func (c *Criteria) Len() int {
	return len(c.items)
}

// Lookup returns the criterion with the given id
func (c *Criteria) Lookup(id string) (model.SortCriterion, error) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}
	return model.SortCriterion{}, &UnknownIDError{ID: id}
}

// Add appends an ascending criterion for field with the lowest precedence
func (c *Criteria) Add(field string) ([]model.SortCriterion, error) {
	if _, ok := c.catalogue.Lookup(field); !ok {
		return c.Snapshot(), &UnknownFieldError{Field: field}
	}
	for _, sc := range c.items {
		if sc.Field == field {
			return c.Snapshot(), &DuplicateFieldError{Field: field}
		}
	}

	c.items = append(slices.Clone(c.items), model.SortCriterion{
		ID:        c.newID(field),
		Field:     field,
		Direction: model.Ascending,
	})

	return c.Snapshot(), nil
}

// Remove deletes the criterion with the given id. Unknown ids are ignored.
func (c *Criteria) Remove(id string) []model.SortCriterion {
	i := c.indexOf(id)
	if i < 0 {
		return c.Snapshot()
	}

	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	return c.Snapshot()
}

// ToggleDirection flips the direction of the criterion with the given id.
// Unknown ids are ignored.
func (c *Criteria) ToggleDirection(id string) []model.SortCriterion {
	i := c.indexOf(id)
	if i < 0 {
		return c.Snapshot()
	}

	items := slices.Clone(c.items)
	items[i].Direction = items[i].Direction.Reverse()
	c.items = items
	return c.Snapshot()
}

// Reorder moves the criterion id to the position currently held by targetID,
// shifting the criteria in between. It is a no-op if either id is unknown or both are equal.
func (c *Criteria) Reorder(id, targetID string) []model.SortCriterion {
	if id == targetID {
		return c.Snapshot()
	}
	from, to := c.indexOf(id), c.indexOf(targetID)
	if from < 0 || to < 0 {
		return c.Snapshot()
	}

	c.items = arrayMove(c.items, from, to)
	return c.Snapshot()
}

// Move shifts the criterion id by delta positions, clamped to the list bounds.
// It is expressed as a Reorder onto the criterion at the destination.
func (c *Criteria) Move(id string, delta int) []model.SortCriterion {
	from := c.indexOf(id)
	if from < 0 || delta == 0 {
		return c.Snapshot()
	}

	to := min(max(from+delta, 0), len(c.items)-1)
	return c.Reorder(id, c.items[to].ID)
}

// Clear removes every criterion
func (c *Criteria) Clear() []model.SortCriterion {
	c.items = nil
	return c.Snapshot()
}

// String renders the criteria as a sort spec, e.g. "name:asc,id:desc"
func (c *Criteria) String() string {
	return FormatSortSpec(c.items)
}

func (c *Criteria) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(sc model.SortCriterion) bool {
		return sc.ID == id
	})
}

// arrayMove returns a copy of items with the element at from reinserted at to
func arrayMove(items []model.SortCriterion, from, to int) []model.SortCriterion {
	moved := items[from]
	out := slices.Delete(slices.Clone(items), from, from+1)
	return slices.Insert(out, to, moved)
}

// ParseSortSpec builds criteria from a comma separated list of field[:asc|desc] terms
func ParseSortSpec(catalogue model.Catalogue, spec string, opts ...CriteriaOption) (*Criteria, error) {
	c := NewCriteria(catalogue, opts...)

	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		field, dir, _ := strings.Cut(term, ":")
		snapshot, err := c.Add(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid sort term %q: %w", term, err)
		}

		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
		case "desc":
			c.ToggleDirection(snapshot[len(snapshot)-1].ID)
		default:
			return nil, fmt.Errorf("invalid sort direction %q in term %q", dir, term)
		}
	}

	return c, nil
}

// FormatSortSpec renders criteria in the form accepted by ParseSortSpec
func FormatSortSpec(criteria []model.SortCriterion) string {
	terms := make([]string, len(criteria))
	for i, sc := range criteria {
		terms[i] = sc.Field + ":" + string(sc.Direction)
	}
	return strings.Join(terms, ",")
}
