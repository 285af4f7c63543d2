// Package views renders storefront pages from embedded html/template files.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dcode-github/listing_storefront/listing"
	"github.com/dcode-github/listing_storefront/models"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Page names.
const (
	HomePage     = "home"
	PropertyPage = "property"
	NotFoundPage = "notfound"
	AuthPage     = "auth"
)

var shared = []string{
	"templates/layout.html",
	"templates/header.html",
	"templates/footer.html",
	"templates/components/*.html",
}

var funcs = template.FuncMap{
	"money":  Money,
	"rating": Rating,
	"lower":  strings.ToLower,
	"title":  Title,
}

// Page is the data every page's layout needs.
type Page struct {
	AppName            string
	Title              string
	Year               int
	UserID             string
	SearchQuery        string
	Selection          string
	SearchButton       models.ButtonProps
	SignOutButton      models.ButtonProps
	AccommodationTypes []models.PillProps
	Content            interface{}
}

// HomeContent feeds the home and search result pages.
type HomeContent struct {
	ShowHero  bool
	HeroImage string
	Heading   string
	Pills     []models.PillProps
	Cards     []models.CardProps
	Empty     *listing.EmptyNotice
}

// PropertyContent feeds the property detail page.
type PropertyContent struct {
	Property      models.Property
	Categories    []models.PillProps
	Quote         listing.BookingQuote
	Action        string
	UpdateButton  models.ButtonProps
	ReserveButton models.ButtonProps
}

// AuthContent feeds the sign in and sign up forms.
type AuthContent struct {
	Heading      string
	Action       string
	ShowEmail    bool
	UserID       string
	Email        string
	Error        string
	SubmitButton models.ButtonProps
	AltHref      string
	AltLabel     string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{HomePage, PropertyPage, NotFoundPage, AuthPage} {
		patterns := append(append([]string(nil), shared...), "templates/pages/"+name+".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into w.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}

// Assets serves the embedded stylesheet and images.
func Assets() http.Handler {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic("failed to create assets sub filesystem: " + err.Error())
	}
	return http.FileServer(http.FS(sub))
}

// Money formats a nightly price: whole amounts drop the cents.
func Money(v float64) string {
	if v == float64(int64(v)) {
		return "$" + strconv.FormatInt(int64(v), 10)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// Rating trims trailing zeros from a rating.
func Rating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Title title-cases a label. Casers keep state, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
