package inventory

import (
	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
)

// Seed applies catalog thresholds and descriptions without requiring the
// drugs to be stocked yet. Existing entries for the same name are overwritten.
func (inv *Inventory) Seed(c catalog.Catalog) {
	for _, t := range c.Thresholds {
		replaced := false
		for i := range inv.thresholds {
			if sameName(inv.thresholds[i].Name, t.Name) {
				inv.thresholds[i].Quantity = t.Quantity
				replaced = true
				break
			}
		}
		if !replaced {
			inv.thresholds = append(inv.thresholds, t)
		}
	}
	for _, d := range c.Descriptions {
		inv.putDescription(d.Name, d.Text)
	}
}
