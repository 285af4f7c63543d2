package listing

import (
	"strings"

	"github.com/dcode-github/listing_storefront/models"
)

// Search keeps the properties whose name, city, state or country contains
// query. A blank query matches everything.
func Search(catalog []models.Property, query string) []models.Property {
	q := models.NormalizeCategory(query)
	if q == "" {
		return catalog
	}

	matched := make([]models.Property, 0, len(catalog))
	for _, p := range catalog {
		fields := []string{p.Name, p.Address.City, p.Address.State, p.Address.Country}
		for _, f := range fields {
			if strings.Contains(models.NormalizeCategory(f), q) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// Find returns the property with the given name.
func Find(catalog []models.Property, name string) (models.Property, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return models.Property{}, false
}
