package vendors

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
	"github.com/AntonioJCosta/stocker/internal/core/domain/vendor"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

/*
Directory keeps vendors and their supply lists in registration order. Vendor
and drug names are compared case-insensitively.
*/
type Directory struct {
	vendors []vendor.Vendor
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{}
}

var _ ports.VendorDirectory = (*Directory)(nil)

func (d *Directory) indexOf(name string) int {
	for i, v := range d.vendors {
		if strings.EqualFold(v.Name, name) {
			return i
		}
	}
	return -1
}

// Add implements ports.VendorDirectory.
func (d *Directory) Add(name string) error {
	if d.indexOf(name) >= 0 {
		return fmt.Errorf("adding vendor %s: %w", name, ports.ErrDuplicateVendor)
	}
	d.vendors = append(d.vendors, vendor.Vendor{Name: name})
	return nil
}

// Exists implements ports.VendorDirectory.
func (d *Directory) Exists(name string) bool {
	return d.indexOf(name) >= 0
}

// All returns a deep copy of the vendor list.
func (d *Directory) All() []vendor.Vendor {
	out := make([]vendor.Vendor, 0, len(d.vendors))
	for _, v := range d.vendors {
		out = append(out, vendor.Vendor{Name: v.Name, Supplies: append([]string(nil), v.Supplies...)})
	}
	return out
}

// AddSupply implements ports.VendorDirectory.
func (d *Directory) AddSupply(vendorName, drugName string) error {
	i := d.indexOf(vendorName)
	if i < 0 {
		return fmt.Errorf("adding supply to %s: %w", vendorName, ports.ErrVendorNotFound)
	}
	for _, s := range d.vendors[i].Supplies {
		if strings.EqualFold(s, drugName) {
			return fmt.Errorf("adding %s to %s: %w", drugName, vendorName, ports.ErrDuplicateSupply)
		}
	}
	d.vendors[i].Supplies = append(d.vendors[i].Supplies, drugName)
	return nil
}

// Supplies implements ports.VendorDirectory. The list keeps insertion order.
func (d *Directory) Supplies(vendorName string) ([]string, error) {
	i := d.indexOf(vendorName)
	if i < 0 {
		return nil, fmt.Errorf("listing supplies of %s: %w", vendorName, ports.ErrVendorNotFound)
	}
	return append([]string(nil), d.vendors[i].Supplies...), nil
}

// SuppliersOf implements ports.VendorDirectory.
func (d *Directory) SuppliersOf(drugName string) []string {
	var names []string
	for _, v := range d.vendors {
		for _, s := range v.Supplies {
			if strings.EqualFold(s, drugName) {
				names = append(names, v.Name)
				break
			}
		}
	}
	return names
}

// Seed registers catalog vendors and their supplies, skipping ones already present.
func (d *Directory) Seed(c catalog.Catalog) {
	for _, v := range c.Vendors {
		if !d.Exists(v.Name) {
			_ = d.Add(v.Name)
		}
		for _, s := range v.Supplies {
			_ = d.AddSupply(v.Name, s)
		}
	}
}
