/*
Package catalog defines the predefined reference data that can be seeded into
the shell's stores at start-up.
*/
package catalog

import (
	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/domain/vendor"
)

// Catalog groups vendors, thresholds and descriptions known ahead of time.
type Catalog struct {
	Vendors      []vendor.Vendor    `yaml:"vendors"`
	Thresholds   []drug.Threshold   `yaml:"thresholds"`
	Descriptions []drug.Description `yaml:"descriptions"`
}

// IsEmpty reports whether the catalog carries nothing to seed.
func (c Catalog) IsEmpty() bool {
	return len(c.Vendors) == 0 && len(c.Thresholds) == 0 && len(c.Descriptions) == 0
}
