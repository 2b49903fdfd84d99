package model

// Direction is the direction a sort criterion orders by
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortCriterion is one (field, direction) rule with a stable identity
type SortCriterion struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// FieldKind selects how values of a field are compared
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumeric
	KindTemporal
)

func (k FieldKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindTemporal:
		return "temporal"
	default:
		return "text"
	}
}

// FieldDescriptor describes a sortable field of ClientRecord
type FieldDescriptor struct {
	Value string
	Label string
	Kind  FieldKind
}

// Field keys of ClientRecord
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldType      = "type"
	FieldEmail     = "email"
	FieldStatus    = "status"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Catalogue is the ordered list of fields eligible for sorting
type Catalogue []FieldDescriptor

// DefaultCatalogue returns the fixed field catalogue in display order
func DefaultCatalogue() Catalogue {
	return Catalogue{
		{Value: FieldID, Label: "Client ID", Kind: KindNumeric},
		{Value: FieldName, Label: "Client Name", Kind: KindText},
		{Value: FieldType, Label: "Client Type", Kind: KindText},
		{Value: FieldEmail, Label: "Email", Kind: KindText},
		{Value: FieldStatus, Label: "Status", Kind: KindText},
		{Value: FieldCreatedAt, Label: "Created At", Kind: KindTemporal},
		{Value: FieldUpdatedAt, Label: "Updated At", Kind: KindTemporal},
	}
}

// Lookup returns the descriptor for a field value
func (c Catalogue) Lookup(value string) (FieldDescriptor, bool) {
	for _, f := range c {
		if f.Value == value {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// Label returns the display label for a field, or the raw value if unknown
func (c Catalogue) Label(value string) string {
	if f, ok := c.Lookup(value); ok {
		return f.Label
	}
	return value
}

// WithLabels returns a copy of the catalogue with labels replaced from overrides.
// Order and field kinds are unchanged.
func (c Catalogue) WithLabels(overrides map[string]string) Catalogue {
	out := make(Catalogue, len(c))
	copy(out, c)
	for i := range out {
		if label, ok := overrides[out[i].Value]; ok && label != "" {
			out[i].Label = label
		}
	}
	return out
}
