package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dcode-github/listing_storefront/models"
)

// FileSource reads a catalog fixture from disk on every load, so edits show
// up without a restart. JSON and YAML are accepted, chosen by extension.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) ([]models.Property, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}
	return decodeFile(s.path, data)
}

func decodeFile(path string, data []byte) ([]models.Property, error) {
	var properties []models.Property
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &properties); err != nil {
			return nil, fmt.Errorf("decode yaml catalog %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &properties); err != nil {
			return nil, fmt.Errorf("decode json catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", ext)
	}
	return properties, nil
}
