package ports

import "github.com/AntonioJCosta/stocker/internal/core/domain/catalog"

// CatalogProvider defines the interface for sourcing predefined vendors,
// thresholds and descriptions, like a configuration file.
type CatalogProvider interface {
	GetCatalog() (catalog.Catalog, error)
}
