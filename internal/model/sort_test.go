package model

import "testing"

func TestDefaultCatalogue(t *testing.T) {
	want := []string{FieldID, FieldName, FieldType, FieldEmail, FieldStatus, FieldCreatedAt, FieldUpdatedAt}
	cat := DefaultCatalogue()
	if len(cat) != len(want) {
		t.Fatalf("len = %d, want %d", len(cat), len(want))
	}
	for i, f := range cat {
		if f.Value != want[i] {
			t.Errorf("cat[%d] = %s, want %s", i, f.Value, want[i])
		}
	}

	if f, ok := cat.Lookup(FieldCreatedAt); !ok || f.Kind != KindTemporal {
		t.Errorf("Lookup(createdAt) = %+v, %v", f, ok)
	}
	if _, ok := cat.Lookup("phone"); ok {
		t.Error("Lookup(phone) should fail")
	}
	if got := cat.Label("phone"); got != "phone" {
		t.Errorf("Label(phone) = %q", got)
	}
}

func TestWithLabels(t *testing.T) {
	base := DefaultCatalogue()
	relabeled := base.WithLabels(map[string]string{FieldID: "Number", FieldName: ""})

	if got := relabeled.Label(FieldID); got != "Number" {
		t.Errorf("Label(id) = %q, want Number", got)
	}
	if got := relabeled.Label(FieldName); got != "Client Name" {
		t.Errorf("empty override changed label to %q", got)
	}
	if got := base.Label(FieldID); got != "Client ID" {
		t.Errorf("base catalogue modified: %q", got)
	}
}

func TestDirectionReverse(t *testing.T) {
	if Ascending.Reverse() != Descending || Descending.Reverse() != Ascending {
		t.Error("Reverse does not flip direction")
	}
}

func TestParseTypeFilter(t *testing.T) {
	tests := map[string]TypeFilter{
		"Individual": FilterIndividual,
		"Company":    FilterCompany,
		"All":        FilterAll,
		"":           FilterAll,
		"company":    FilterAll,
	}
	for in, want := range tests {
		if got := ParseTypeFilter(in); got != want {
			t.Errorf("ParseTypeFilter(%q) = %q, want %q", in, got, want)
		}
	}
}
