package listing

import (
	"net/url"
	"testing"

	"github.com/dcode-github/listing_storefront/models"
)

var labels = []string{"Villa", "Cabin", "Loft"}

func TestRenderWithoutSelection(t *testing.T) {
	v := Render(sampleCatalog(), labels, models.NoSelection())

	if len(v.Cards) != 2 {
		t.Fatalf("cards: got %d, want 2", len(v.Cards))
	}
	if v.Empty != nil {
		t.Errorf("unexpected empty notice %+v", v.Empty)
	}
	for _, c := range v.Controls {
		if c.Active || c.Variant != models.VariantInactive {
			t.Errorf("control %q should be inactive", c.Label)
		}
		if got, _ := c.Target.Category(); got != c.Label {
			t.Errorf("control %q target: got %q", c.Label, got)
		}
	}
}

func TestRenderActiveControlTogglesOff(t *testing.T) {
	v := Render(sampleCatalog(), labels, models.Select("Villa"))

	villa := v.Controls[0]
	if !villa.Active || villa.Variant != models.VariantActive {
		t.Errorf("Villa control: got active=%v variant=%q", villa.Active, villa.Variant)
	}
	if villa.Target.IsSet() {
		t.Errorf("Villa target: got %q, want none", villa.Target.String())
	}
	cabin := v.Controls[1]
	if got, _ := cabin.Target.Category(); got != "Cabin" {
		t.Errorf("Cabin target: got %q, want Cabin", got)
	}
}

func TestRenderCardProjection(t *testing.T) {
	v := Render(sampleCatalog(), labels, models.Select("villa"))

	if len(v.Cards) != 1 {
		t.Fatalf("cards: got %d, want 1", len(v.Cards))
	}
	c := v.Cards[0]
	if c.Key != "A" || c.Title != "A" {
		t.Errorf("key/title: got %q/%q", c.Key, c.Title)
	}
	if c.Location != "Bali, Indonesia" {
		t.Errorf("location: got %q", c.Location)
	}
	if c.Price != 200 || c.Rating != 4.9 {
		t.Errorf("price/rating: got %v/%v", c.Price, c.Rating)
	}
	if c.Href != "/properties/A" {
		t.Errorf("href: got %q", c.Href)
	}
}

func TestRenderEmptyNotice(t *testing.T) {
	v := Render(sampleCatalog(), labels, models.Select("Loft"))

	if len(v.Cards) != 0 {
		t.Fatalf("cards: got %d, want 0", len(v.Cards))
	}
	if v.Empty == nil {
		t.Fatal("expected empty notice")
	}
	if v.Empty.Message != `No properties match "Loft"` {
		t.Errorf("message: got %q", v.Empty.Message)
	}
}

func TestHref(t *testing.T) {
	tests := []struct {
		name  string
		sel   models.Selection
		extra url.Values
		want  string
	}{
		{"none", models.NoSelection(), nil, "/"},
		{"selected", models.Select("Top Villa"), nil, "/?category=Top+Villa"},
		{"with query", models.Select("Cabin"), url.Values{"q": {"bali"}}, "/?category=Cabin&q=bali"},
		{"blank extra dropped", models.NoSelection(), url.Values{"q": {""}}, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Href("/", tt.sel, tt.extra); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPills(t *testing.T) {
	v := Render(sampleCatalog(), labels, models.Select("Cabin"))
	pills := Pills(v.Controls, "/", nil)

	want := []models.PillProps{
		{Label: "Villa", Href: "/?category=Villa", Variant: models.VariantInactive},
		{Label: "Cabin", Href: "/", Variant: models.VariantActive},
		{Label: "Loft", Href: "/?category=Loft", Variant: models.VariantInactive},
	}
	for i := range want {
		if pills[i] != want[i] {
			t.Errorf("pill %d: got %+v, want %+v", i, pills[i], want[i])
		}
	}
}
