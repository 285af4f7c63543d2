package models

import "testing"

func TestSelectionZeroValueIsNone(t *testing.T) {
	var s Selection
	if s.IsSet() {
		t.Error("zero Selection should be unset")
	}
	if _, ok := s.Category(); ok {
		t.Error("Category() ok: got true, want false")
	}
}

func TestSelectEmptyStringIsDistinctFromNone(t *testing.T) {
	s := Select("")
	if !s.IsSet() {
		t.Error("Select(\"\") should be set")
	}
	if s == NoSelection() {
		t.Error("Select(\"\") should differ from NoSelection()")
	}
}

func TestToggleDeselectsSameCategory(t *testing.T) {
	s := NoSelection().Toggle("Villa").Toggle("Villa")
	if s.IsSet() {
		t.Errorf("after double toggle: got %q, want none", s.String())
	}
}

func TestToggleReplacesSelection(t *testing.T) {
	s := NoSelection().Toggle("Villa").Toggle("Cabin")
	got, ok := s.Category()
	if !ok || got != "Cabin" {
		t.Errorf("got (%q, %v), want (%q, true)", got, ok, "Cabin")
	}
}

func TestToggleIgnoresCase(t *testing.T) {
	s := Select("villa").Toggle("Villa")
	if s.IsSet() {
		t.Errorf("toggle with different case: got %q, want none", s.String())
	}
}

func TestSelectionFromQuery(t *testing.T) {
	tests := []struct {
		raw     string
		wantSet bool
		want    string
	}{
		{"", false, ""},
		{"   ", false, ""},
		{"Villa", true, "Villa"},
		{" Cabin ", true, "Cabin"},
	}
	for _, tt := range tests {
		s := SelectionFromQuery(tt.raw)
		got, ok := s.Category()
		if ok != tt.wantSet || got != tt.want {
			t.Errorf("SelectionFromQuery(%q): got (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantSet)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	if NormalizeCategory("  Luxury VILLA ") != NormalizeCategory("luxury villa") {
		t.Error("normalization should trim and fold case")
	}
	if NormalizeCategory("Villas") == NormalizeCategory("Villa") {
		t.Error("normalization should not strip plurals")
	}
}

func TestPropertyLocation(t *testing.T) {
	tests := []struct {
		addr Address
		want string
	}{
		{Address{City: "Bali", Country: "Indonesia"}, "Bali, Indonesia"},
		{Address{Country: "Indonesia"}, "Indonesia"},
		{Address{City: "Bali"}, "Bali"},
	}
	for _, tt := range tests {
		if got := (Property{Address: tt.addr}).Location(); got != tt.want {
			t.Errorf("Location(%+v): got %q, want %q", tt.addr, got, tt.want)
		}
	}
}
