package models

import (
	"strings"

	"golang.org/x/text/cases"
)

// Selection is the optional category filter of the listing view. The zero
// value selects nothing, which is distinct from selecting the empty string.
type Selection struct {
	category string
	set      bool
}

// NoSelection returns the unselected state.
func NoSelection() Selection {
	return Selection{}
}

// Select returns a selection of category.
func Select(category string) Selection {
	return Selection{category: category, set: true}
}

// SelectionFromQuery treats a missing or blank query value as no selection.
func SelectionFromQuery(raw string) Selection {
	if strings.TrimSpace(raw) == "" {
		return NoSelection()
	}
	return Select(strings.TrimSpace(raw))
}

// Category returns the selected category and whether one is set.
func (s Selection) Category() (string, bool) {
	return s.category, s.set
}

func (s Selection) IsSet() bool {
	return s.set
}

// String returns the category, or "" when nothing is selected.
func (s Selection) String() string {
	return s.category
}

// Is reports whether category is the current selection, using the same
// normalization as the catalog filter.
func (s Selection) Is(category string) bool {
	return s.set && NormalizeCategory(s.category) == NormalizeCategory(category)
}

// Toggle is the only state transition of the listing view. Toggling the
// selected category clears it; any other category replaces the selection.
func (s Selection) Toggle(category string) Selection {
	if s.Is(category) {
		return NoSelection()
	}
	return Select(category)
}

// QueryValue is the value to put in ?category= for this selection.
func (s Selection) QueryValue() string {
	if !s.set {
		return ""
	}
	return s.category
}

// NormalizeCategory trims surrounding space and case-folds a category tag.
func NormalizeCategory(c string) string {
	return cases.Fold().String(strings.TrimSpace(c))
}
