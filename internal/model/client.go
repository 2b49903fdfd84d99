package model

import "time"

// ClientType is the kind of client a record describes
type ClientType string

const (
	ClientIndividual ClientType = "Individual"
	ClientCompany    ClientType = "Company"
)

// Valid reports whether t is one of the known client types
func (t ClientType) Valid() bool {
	return t == ClientIndividual || t == ClientCompany
}

// ClientStatus is the lifecycle status of a client. The zero value means unknown.
type ClientStatus string

const (
	StatusUnknown  ClientStatus = ""
	StatusActive   ClientStatus = "Active"
	StatusInactive ClientStatus = "Inactive"
	StatusPending  ClientStatus = "Pending"
)

// Valid reports whether s is a known status or unknown
func (s ClientStatus) Valid() bool {
	switch s {
	case StatusUnknown, StatusActive, StatusInactive, StatusPending:
		return true
	default:
		return false
	}
}

// ClientRecord represents a single client in the client list
type ClientRecord struct {
	ID        int
	Name      string
	Type      ClientType
	Email     string
	Status    ClientStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TypeFilter restricts the client list to a client type
type TypeFilter string

const (
	FilterAll        TypeFilter = "All"
	FilterIndividual TypeFilter = "Individual"
	FilterCompany    TypeFilter = "Company"
)

// ParseTypeFilter converts a query value into a TypeFilter. Unknown values mean All.
func ParseTypeFilter(s string) TypeFilter {
	switch TypeFilter(s) {
	case FilterIndividual:
		return FilterIndividual
	case FilterCompany:
		return FilterCompany
	default:
		return FilterAll
	}
}

// FilterState holds the current type filter and search term
type FilterState struct {
	Type   TypeFilter
	Search string
}
