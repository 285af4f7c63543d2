package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dcode-github/listing_storefront/catalog"
	"github.com/dcode-github/listing_storefront/constants"
	"github.com/dcode-github/listing_storefront/listing"
	"github.com/dcode-github/listing_storefront/models"
	"github.com/dcode-github/listing_storefront/views"
)

// Home renders the hero, the filter row and the listing grid for the
// ?category= selection.
func Home(src catalog.Source, renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := src.Load(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "error loading catalog", "error", err)
			renderServerError(w, r, renderer, appName)
			return
		}

		sel := models.SelectionFromQuery(r.URL.Query().Get("category"))
		view := listing.Render(properties, constants.Filters, sel)

		page := newPage(r, appName, "Home", sel)
		page.Content = views.HomeContent{
			ShowHero:  true,
			HeroImage: constants.HeroImage,
			Pills:     listing.Pills(view.Controls, "/", nil),
			Cards:     view.Cards,
			Empty:     view.Empty,
		}
		renderPage(w, r, renderer, http.StatusOK, views.HomePage, page)
	}
}

// Search narrows the catalog to a destination and then applies the
// category selection on top.
func Search(src catalog.Source, renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := src.Load(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "error loading catalog", "error", err)
			renderServerError(w, r, renderer, appName)
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		sel := models.SelectionFromQuery(r.URL.Query().Get("category"))
		view := listing.Render(listing.Search(properties, query), constants.Filters, sel)

		heading := "All properties"
		if query != "" {
			heading = fmt.Sprintf("Results for %q", query)
		}

		page := newPage(r, appName, "Search", sel)
		page.Content = views.HomeContent{
			Heading: heading,
			Pills:   listing.Pills(view.Controls, "/search", url.Values{"q": {query}}),
			Cards:   view.Cards,
			Empty:   view.Empty,
		}
		renderPage(w, r, renderer, http.StatusOK, views.HomePage, page)
	}
}

// PropertyDetail renders one property with its booking panel.
func PropertyDetail(src catalog.Source, renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		property, err := catalog.Get(r.Context(), src, name)
		if errors.Is(err, catalog.ErrNotFound) {
			slog.InfoContext(r.Context(), "property not found", "name", name)
			renderNotFound(w, r, renderer, appName, fmt.Sprintf("We could not find a property called %q.", name))
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "error loading property", "name", name, "error", err)
			renderServerError(w, r, renderer, appName)
			return
		}

		categories := make([]models.PillProps, 0, len(property.Category))
		for _, c := range property.Category {
			categories = append(categories, models.PillProps{
				Label:   c,
				Href:    listing.Href("/", models.Select(c), nil),
				Variant: models.VariantInactive,
			})
		}

		q := r.URL.Query()
		page := newPage(r, appName, property.Name, models.NoSelection())
		page.Content = views.PropertyContent{
			Property:   property,
			Categories: categories,
			Quote:      listing.Quote(property.Price, q.Get("checkIn"), q.Get("checkOut")),
			Action:     listing.PropertyPath(property.Name),
			UpdateButton: models.ButtonProps{
				Label:   "Update total",
				Type:    "submit",
				Variant: models.VariantSecondary,
			},
			ReserveButton: models.ButtonProps{
				Label:   "Reserve Now",
				Type:    "button",
				Variant: "reserve",
			},
		}
		renderPage(w, r, renderer, http.StatusOK, views.PropertyPage, page)
	}
}

// NotFound renders the not-found page for unmatched routes.
func NotFound(renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(w, r, renderer, appName, "The page you are looking for does not exist.")
	}
}
