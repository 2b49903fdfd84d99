package service

import "fmt"

// DuplicateFieldError is returned when a field is added to criteria that already sort on it
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field %q is already a sort criterion", e.Field)
}

// UnknownFieldError is returned when a field is not in the catalogue
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q is not sortable", e.Field)
}

// UnknownIDError reports a criterion id that is not in the current sequence.
// It usually means the page holds a stale reference.
type UnknownIDError struct {
	ID string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("no sort criterion with id %q", e.ID)
}
