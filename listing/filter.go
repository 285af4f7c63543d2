// Package listing holds the storefront's listing logic: the category filter,
// the destination search, the grid projection and booking quotes. Nothing in
// here performs I/O.
package listing

import "github.com/dcode-github/listing_storefront/models"

// Filter returns the properties that carry a category tag equal to the
// selection, ignoring case and surrounding space. With no selection the
// catalog is returned as is. Order is preserved and catalog is never modified.
func Filter(catalog []models.Property, sel models.Selection) []models.Property {
	category, ok := sel.Category()
	if !ok {
		return catalog
	}

	want := models.NormalizeCategory(category)
	matched := make([]models.Property, 0, len(catalog))
	for _, p := range catalog {
		if hasCategory(p, want) {
			matched = append(matched, p)
		}
	}
	return matched
}

func hasCategory(p models.Property, normalized string) bool {
	for _, c := range p.Category {
		if models.NormalizeCategory(c) == normalized {
			return true
		}
	}
	return false
}
