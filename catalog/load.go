package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a catalog file extension with no
// registered decoder.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Load reads and validates a catalog file. The decoder follows the file
// extension: .toml, .yaml, .yml, or .json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filepath.Base(path), err)
	}
	return cat, nil
}

// Parse decodes and validates catalog bytes in the format the extension
// names.
func Parse(data []byte, ext string) (*Catalog, error) {
	var cat Catalog
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
