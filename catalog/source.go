// Package catalog supplies the property snapshot the storefront renders.
// Every backend returns records in a stable order, and callers treat the
// returned slice as read-only.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dcode-github/listing_storefront/listing"
	"github.com/dcode-github/listing_storefront/models"
)

var ErrNotFound = errors.New("property not found")

// Source loads the current catalog snapshot.
type Source interface {
	Load(ctx context.Context) ([]models.Property, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]models.Property, error)

func (f SourceFunc) Load(ctx context.Context) ([]models.Property, error) {
	return f(ctx)
}

// StaticSource serves a fixed catalog decoded once at construction.
type StaticSource struct {
	properties []models.Property
}

// NewStaticSource decodes a JSON array of properties.
func NewStaticSource(data []byte) (*StaticSource, error) {
	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &StaticSource{properties: properties}, nil
}

// NewStaticSourceFrom wraps an already decoded catalog.
func NewStaticSourceFrom(properties []models.Property) *StaticSource {
	return &StaticSource{properties: properties}
}

func (s *StaticSource) Load(_ context.Context) ([]models.Property, error) {
	return s.properties, nil
}

// Get loads the catalog and returns the property called name.
func Get(ctx context.Context, src Source, name string) (models.Property, error) {
	properties, err := src.Load(ctx)
	if err != nil {
		return models.Property{}, err
	}
	p, ok := listing.Find(properties, name)
	if !ok {
		return models.Property{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}
