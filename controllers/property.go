package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/singleflight"

	"github.com/dcode-github/listing_storefront/cache"
	"github.com/dcode-github/listing_storefront/catalog"
	"github.com/dcode-github/listing_storefront/constants"
	"github.com/dcode-github/listing_storefront/listing"
	"github.com/dcode-github/listing_storefront/models"
	"github.com/dcode-github/listing_storefront/utils"
)

// CacheHeader reports whether a property list came from the cache.
const CacheHeader = "X-Cache"

// Filters is the payload of GET /api/filters.
type Filters struct {
	Filters            []string `json:"filters"`
	AccommodationTypes []string `json:"accommodationTypes"`
}

// GetAllProperties returns the catalog narrowed by ?q= and ?category=.
// Responses are cached per query, and concurrent misses for the same query
// share one catalog load.
func GetAllProperties(src catalog.Source, store cache.Store, ttl time.Duration) http.HandlerFunc {
	var group singleflight.Group

	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		sel := models.SelectionFromQuery(r.URL.Query().Get("category"))
		cacheKey := cache.Key(cache.PropertyPrefix, url.Values{
			"q":        {query},
			"category": {sel.QueryValue()},
		})

		cached, ok, err := store.Get(r.Context(), cacheKey)
		if err != nil {
			slog.WarnContext(r.Context(), "cache GET error", "key", cacheKey, "error", err)
		}
		if ok {
			slog.DebugContext(r.Context(), "cache hit", "key", cacheKey)
			writeRawJSON(w, r, "HIT", cached)
			return
		}
		slog.DebugContext(r.Context(), "cache miss", "key", cacheKey)

		ctx := context.WithoutCancel(r.Context())
		result, err, _ := group.Do(cacheKey, func() (interface{}, error) {
			properties, err := src.Load(ctx)
			if err != nil {
				return nil, err
			}
			matched := listing.Filter(listing.Search(properties, query), sel)
			body, err := json.Marshal(models.APIResponse{
				Success: true,
				Message: fmt.Sprintf("%d properties", len(matched)),
				Data:    matched,
			})
			if err != nil {
				return nil, fmt.Errorf("encode properties: %w", err)
			}
			if err := store.Set(ctx, cacheKey, body, ttl); err != nil {
				slog.WarnContext(ctx, "failed to cache response", "key", cacheKey, "error", err)
			}
			return body, nil
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "error fetching properties", "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}
		writeRawJSON(w, r, "MISS", result.([]byte))
	}
}

// GetProperty returns the property named in the path.
func GetProperty(src catalog.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := lookupProperty(w, r, src)
		if !ok {
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "Property found", Data: property})
	}
}

// GetQuote prices a stay at the property named in the path.
func GetQuote(src catalog.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := lookupProperty(w, r, src)
		if !ok {
			return
		}
		q := r.URL.Query()
		quote := listing.Quote(property.Price, q.Get("checkIn"), q.Get("checkOut"))
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "Quote calculated", Data: quote})
	}
}

func GetFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Filters",
			Data: Filters{
				Filters:            constants.Filters,
				AccommodationTypes: constants.AccommodationTypes,
			},
		})
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// InvalidatePropertyCache drops every cached property query, e.g. after the
// catalog has been reseeded.
func InvalidatePropertyCache(ctx context.Context, store cache.Store) {
	deleted, err := store.DeletePrefix(ctx, cache.PropertyPrefix)
	if err != nil {
		slog.ErrorContext(ctx, "error invalidating property cache", "error", err)
		return
	}
	slog.InfoContext(ctx, "property cache invalidated", "deleted", deleted)
}

func lookupProperty(w http.ResponseWriter, r *http.Request, src catalog.Source) (models.Property, bool) {
	name := mux.Vars(r)["name"]
	property, err := catalog.Get(r.Context(), src, name)
	if errors.Is(err, catalog.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Property not found")
		return models.Property{}, false
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "error fetching property", "name", name, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching property")
		return models.Property{}, false
	}
	return property, true
}

func writeRawJSON(w http.ResponseWriter, r *http.Request, cacheStatus string, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(CacheHeader, cacheStatus)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}
