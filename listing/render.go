package listing

import (
	"fmt"
	"net/url"

	"github.com/dcode-github/listing_storefront/models"
)

// Control is one filter pill. Target is the selection that activating it
// leads to.
type Control struct {
	Label   string
	Active  bool
	Variant string
	Target  models.Selection
}

// EmptyNotice is shown in place of the grid when nothing matches.
type EmptyNotice struct {
	Selection string
	Message   string
}

// View is the render tree of the listing section.
type View struct {
	Selection models.Selection
	Controls  []Control
	Cards     []models.CardProps
	Empty     *EmptyNotice
}

// Render filters catalog by sel and projects the result into cards, next to
// one control per label. It reads nothing besides its arguments.
func Render(catalog []models.Property, labels []string, sel models.Selection) View {
	v := View{
		Selection: sel,
		Controls:  make([]Control, 0, len(labels)),
	}

	for _, label := range labels {
		c := Control{
			Label:   label,
			Active:  sel.Is(label),
			Variant: models.VariantInactive,
			Target:  sel.Toggle(label),
		}
		if c.Active {
			c.Variant = models.VariantActive
		}
		v.Controls = append(v.Controls, c)
	}

	matched := Filter(catalog, sel)
	v.Cards = make([]models.CardProps, 0, len(matched))
	for _, p := range matched {
		v.Cards = append(v.Cards, SummaryCard(p))
	}

	if len(v.Cards) == 0 {
		v.Empty = &EmptyNotice{
			Selection: sel.String(),
			Message:   fmt.Sprintf("No properties match %q", sel.String()),
		}
	}
	return v
}

// SummaryCard projects a property into the grid card.
func SummaryCard(p models.Property) models.CardProps {
	return models.CardProps{
		Key:      p.Name,
		Title:    p.Name,
		Location: p.Location(),
		Image:    p.Image,
		Href:     PropertyPath(p.Name),
		Price:    p.Price,
		Rating:   p.Rating,
	}
}

// PropertyPath is the detail page path of a property.
func PropertyPath(name string) string {
	return "/properties/" + url.PathEscape(name)
}

// Href builds a link to base that carries sel, plus any extra query values.
func Href(base string, sel models.Selection, extra url.Values) string {
	q := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			if v != "" {
				q.Add(k, v)
			}
		}
	}
	if sel.IsSet() {
		q.Set("category", sel.QueryValue())
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

// Pills converts controls into pill props linking to base.
func Pills(controls []Control, base string, extra url.Values) []models.PillProps {
	pills := make([]models.PillProps, 0, len(controls))
	for _, c := range controls {
		pills = append(pills, models.PillProps{
			Label:   c.Label,
			Href:    Href(base, c.Target, extra),
			Variant: c.Variant,
		})
	}
	return pills
}
