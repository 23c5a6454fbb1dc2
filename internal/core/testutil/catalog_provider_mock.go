package testutil

import (
	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

// MockCatalogProvider is a mock implementation of ports.CatalogProvider.
type MockCatalogProvider struct {
	GetCatalogFunc func() (catalog.Catalog, error)
}

func (m *MockCatalogProvider) GetCatalog() (catalog.Catalog, error) {
	if m.GetCatalogFunc != nil {
		return m.GetCatalogFunc()
	}
	return catalog.Catalog{}, nil // Default behavior
}

var _ ports.CatalogProvider = (*MockCatalogProvider)(nil)
