package listing

import (
	"testing"

	"github.com/dcode-github/listing_storefront/models"
)

func sampleCatalog() []models.Property {
	return []models.Property{
		{Name: "A", Category: []string{"Villa"}, Address: models.Address{City: "Bali", Country: "Indonesia"}, Price: 200, Rating: 4.9},
		{Name: "B", Category: []string{"Cabin"}, Address: models.Address{City: "Aspen", State: "Colorado", Country: "USA"}, Price: 150, Rating: 4.5},
	}
}

func mixedCatalog() []models.Property {
	return []models.Property{
		{Name: "p1", Category: []string{"Villa", "Pool"}},
		{Name: "p2", Category: []string{"Cabin"}},
		{Name: "p3", Category: []string{"VILLA"}},
		{Name: "p4", Category: []string{"Villas"}},
		{Name: "p5", Category: nil},
		{Name: "p6", Category: []string{"Luxury Villa", " villa "}},
	}
}

func names(ps []models.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func equalNames(t *testing.T, got []models.Property, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestFilterScenarios(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("case-insensitive match", func(t *testing.T) {
		equalNames(t, Filter(catalog, models.Select("villa")), "A")
	})
	t.Run("no selection", func(t *testing.T) {
		equalNames(t, Filter(catalog, models.NoSelection()), "A", "B")
	})
	t.Run("no match", func(t *testing.T) {
		got := Filter(catalog, models.Select("Loft"))
		if got == nil || len(got) != 0 {
			t.Fatalf("got %v, want empty non-nil slice", names(got))
		}
	})
}

func TestFilterIdentityWithoutSelection(t *testing.T) {
	for _, catalog := range [][]models.Property{nil, sampleCatalog(), mixedCatalog()} {
		got := Filter(catalog, models.NoSelection())
		if len(got) != len(catalog) {
			t.Fatalf("len: got %d, want %d", len(got), len(catalog))
		}
		for i := range catalog {
			if got[i].Name != catalog[i].Name {
				t.Errorf("index %d: got %q, want %q", i, got[i].Name, catalog[i].Name)
			}
		}
	}
}

func TestFilterIsSoundCompleteAndOrdered(t *testing.T) {
	catalog := mixedCatalog()
	for _, sel := range []string{"villa", "Cabin", "pool", "Villas", "loft", ""} {
		got := Filter(catalog, models.Select(sel))

		// Every result carries the tag, and results keep catalog order.
		last := -1
		for _, p := range got {
			if !hasCategory(p, models.NormalizeCategory(sel)) {
				t.Errorf("%q: %s has no matching tag", sel, p.Name)
			}
			idx := indexOf(catalog, p.Name)
			if idx <= last {
				t.Errorf("%q: %s out of order", sel, p.Name)
			}
			last = idx
		}

		// Every catalog entry with the tag is present.
		for _, p := range catalog {
			if hasCategory(p, models.NormalizeCategory(sel)) && indexOf(got, p.Name) < 0 {
				t.Errorf("%q: %s missing from result", sel, p.Name)
			}
		}
	}
}

func TestFilterExactTagNotSubstring(t *testing.T) {
	equalNames(t, Filter(mixedCatalog(), models.Select("Villa")), "p1", "p3", "p6")
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	catalog := mixedCatalog()
	before := names(catalog)
	_ = Filter(catalog, models.Select("Cabin"))
	equalNames(t, catalog, before...)
}

func TestToggleScenario(t *testing.T) {
	sel := models.NoSelection().Toggle("Villa").Toggle("Villa")
	if sel.IsSet() {
		t.Fatalf("selection: got %q, want none", sel.String())
	}
	equalNames(t, Filter(sampleCatalog(), sel), "A", "B")
}

func indexOf(ps []models.Property, name string) int {
	for i, p := range ps {
		if p.Name == name {
			return i
		}
	}
	return -1
}
