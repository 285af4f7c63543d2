package listing

import (
	"testing"

	"github.com/dcode-github/listing_storefront/models"
)

func TestSearch(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"A", "B"}},
		{"  ", []string{"A", "B"}},
		{"bali", []string{"A"}},
		{"colo", []string{"B"}},
		{" USA ", []string{"B"}},
		{"a", []string{"A", "B"}},
		{"tokyo", []string{}},
	}
	for _, tt := range tests {
		equalNames(t, Search(catalog, tt.query), tt.want...)
	}
}

func TestSearchThenFilter(t *testing.T) {
	got := Filter(Search(sampleCatalog(), "a"), models.Select("CABIN"))
	equalNames(t, got, "B")
}

func TestFind(t *testing.T) {
	if p, ok := Find(sampleCatalog(), "B"); !ok || p.Address.City != "Aspen" {
		t.Errorf("Find(B): got (%+v, %v)", p, ok)
	}
	if _, ok := Find(sampleCatalog(), "b"); ok {
		t.Error("Find should match names exactly")
	}
}
