package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the CatalogProvider interface
// by reading vendors, thresholds and descriptions from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML catalog file.
func NewYAMLProvider(filePath string) (ports.CatalogProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML catalog path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetCatalog reads and parses the configured YAML file.
// A missing or empty file yields an empty catalog and no error.
func (p *YAMLProvider) GetCatalog() (catalog.Catalog, error) {
	var c catalog.Catalog

	raw, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read catalog file %s: %w", p.filePath, err)
	}
	if len(raw) == 0 {
		return c, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&c); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return catalog.Catalog{}, nil
		}
		return catalog.Catalog{}, fmt.Errorf("failed to unmarshal catalog from %s: %w", p.filePath, err)
	}

	if err := validate(c); err != nil {
		return catalog.Catalog{}, fmt.Errorf("invalid catalog %s: %w", p.filePath, err)
	}
	return c, nil
}

func validate(c catalog.Catalog) error {
	for i, v := range c.Vendors {
		if v.Name == "" {
			return fmt.Errorf("vendor #%d has no name", i+1)
		}
		if strings.ContainsAny(v.Name, " \t") {
			return fmt.Errorf("vendor name %q must be a single word", v.Name)
		}
	}
	for _, t := range c.Thresholds {
		if t.Name == "" {
			return errors.New("threshold without a drug name")
		}
		if t.Quantity < 0 {
			return fmt.Errorf("threshold of %s must not be negative", t.Name)
		}
	}
	for _, d := range c.Descriptions {
		if d.Name == "" || d.Text == "" {
			return errors.New("descriptions need both a name and a text")
		}
	}
	return nil
}
