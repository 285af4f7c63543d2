package controllers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dcode-github/listing_storefront/constants"
	"github.com/dcode-github/listing_storefront/listing"
	"github.com/dcode-github/listing_storefront/middleware"
	"github.com/dcode-github/listing_storefront/models"
	"github.com/dcode-github/listing_storefront/views"
)

var now = time.Now

// newPage fills in the header and footer shared by every page.
func newPage(r *http.Request, appName, title string, sel models.Selection) views.Page {
	userID, _ := middleware.UserID(r.Context())
	return views.Page{
		AppName:     appName,
		Title:       title,
		Year:        now().Year(),
		UserID:      userID,
		SearchQuery: strings.TrimSpace(r.URL.Query().Get("q")),
		Selection:   sel.QueryValue(),
		SearchButton: models.ButtonProps{
			Label:   "Search",
			Type:    "submit",
			Variant: models.VariantPrimary,
		},
		SignOutButton: models.ButtonProps{
			Label:   "Sign Out",
			Type:    "submit",
			Variant: models.VariantSecondary,
		},
		AccommodationTypes: accommodationChips(sel),
	}
}

// accommodationChips link to the home page with their type selected. They
// only ever select, so an active chip links to itself.
func accommodationChips(sel models.Selection) []models.PillProps {
	chips := make([]models.PillProps, 0, len(constants.AccommodationTypes))
	for _, label := range constants.AccommodationTypes {
		variant := models.VariantInactive
		if sel.Is(label) {
			variant = models.VariantActive
		}
		chips = append(chips, models.PillProps{
			Label:   label,
			Href:    listing.Href("/", models.Select(label), nil),
			Variant: variant,
		})
	}
	return chips
}

// renderPage buffers the page so a template failure can still become a 500.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, status int, name string, page views.Page) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, name, page); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "page", name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "failed to write page", "page", name, "error", err)
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, appName, message string) {
	page := newPage(r, appName, "Page not found", models.NoSelection())
	page.Content = message
	renderPage(w, r, renderer, http.StatusNotFound, views.NotFoundPage, page)
}

func renderServerError(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, appName string) {
	page := newPage(r, appName, "Something went wrong", models.NoSelection())
	page.Content = "We could not load the listings. Please try again."
	renderPage(w, r, renderer, http.StatusInternalServerError, views.NotFoundPage, page)
}
