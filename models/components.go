package models

// Variants understood by the pill and button templates.
const (
	VariantActive    = "active"
	VariantInactive  = "inactive"
	VariantPrimary   = "primary"
	VariantSecondary = "secondary"
)

// PillProps is a selectable control. Activation follows Href; the pill keeps
// no state of its own.
type PillProps struct {
	Label   string
	Href    string
	Variant string
}

type ButtonProps struct {
	Label    string
	Disabled bool
	Type     string // button, submit or reset
	Variant  string
	Form     string
}

// CardProps is the read-only projection rendered by the card template.
type CardProps struct {
	Key      string
	Title    string
	Location string
	Image    string
	Href     string
	Price    float64
	Rating   float64
}
