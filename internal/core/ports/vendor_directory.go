package ports

import "github.com/AntonioJCosta/stocker/internal/core/domain/vendor"

// VendorDirectory defines the contract for the list of suppliers and what they supply.
type VendorDirectory interface {
	// Add returns ErrDuplicateVendor when the name is already registered.
	Add(name string) error
	Exists(name string) bool
	All() []vendor.Vendor
	// AddSupply returns ErrVendorNotFound or ErrDuplicateSupply.
	AddSupply(vendorName, drugName string) error
	Supplies(vendorName string) ([]string, error)
	// SuppliersOf returns the names of vendors supplying drugName, in registration order.
	SuppliersOf(drugName string) []string
}
