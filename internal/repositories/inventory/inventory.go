package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

/*
Inventory keeps drug records in memory in insertion order, together with the
thresholds and descriptions attached to drug names. It implements the
ports.Inventory interface. It is not safe for concurrent use; the dispatch
service serializes access.
*/
type Inventory struct {
	drugs        []drug.Drug
	thresholds   []drug.Threshold
	descriptions []drug.Description
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// All returns a copy of every record.
func (inv *Inventory) All() []drug.Drug {
	return append([]drug.Drug(nil), inv.drugs...)
}

var _ ports.Inventory = (*Inventory)(nil)

// Add implements ports.Inventory.
func (inv *Inventory) Add(d drug.Drug) error {
	if _, exists := inv.FindBySerial(d.SerialNumber); exists {
		return fmt.Errorf("adding %s: %w", d.SerialNumber, ports.ErrDuplicateSerial)
	}
	if stock := inv.StockOf(d.Name); d.Quantity > 0 && stock > math.MaxInt64-d.Quantity {
		return fmt.Errorf("adding %d of %s (have %d): %w", d.Quantity, d.Name, stock, ports.ErrQuantityOverflow)
	}
	inv.drugs = append(inv.drugs, d)
	return nil
}

// FindByName implements ports.Inventory.
func (inv *Inventory) FindByName(name string) []drug.Drug {
	var found []drug.Drug
	for _, d := range inv.drugs {
		if sameName(d.Name, name) {
			found = append(found, d)
		}
	}
	return found
}

// FindBySerial implements ports.Inventory. Serial numbers match exactly.
func (inv *Inventory) FindBySerial(serial string) (drug.Drug, bool) {
	for _, d := range inv.drugs {
		if d.SerialNumber == serial {
			return d, true
		}
	}
	return drug.Drug{}, false
}

// DeleteByName implements ports.Inventory.
func (inv *Inventory) DeleteByName(name string) int {
	kept := inv.drugs[:0]
	removed := 0
	for _, d := range inv.drugs {
		if sameName(d.Name, name) {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	inv.drugs = kept
	return removed
}

// StockOf implements ports.Inventory.
func (inv *Inventory) StockOf(name string) int64 {
	var total int64
	for _, d := range inv.drugs {
		if sameName(d.Name, name) {
			total += d.Quantity
		}
	}
	return total
}

// Deduct implements ports.Inventory. Records drained to zero stay in the list.
func (inv *Inventory) Deduct(name string, qty int64) error {
	if len(inv.FindByName(name)) == 0 {
		return fmt.Errorf("deducting %s: %w", name, ports.ErrDrugNotFound)
	}
	if stock := inv.StockOf(name); stock < qty {
		return fmt.Errorf("deducting %d of %s (have %d): %w", qty, name, stock, ports.ErrInsufficientStock)
	}
	remaining := qty
	for i := range inv.drugs {
		if remaining == 0 {
			break
		}
		if !sameName(inv.drugs[i].Name, name) {
			continue
		}
		take := min(inv.drugs[i].Quantity, remaining)
		inv.drugs[i].Quantity -= take
		remaining -= take
	}
	return nil
}

// Replace implements ports.Inventory.
func (inv *Inventory) Replace(drugs []drug.Drug) {
	inv.drugs = append([]drug.Drug(nil), drugs...)
}

// SetThreshold implements ports.Inventory. Setting it again overwrites the old value.
func (inv *Inventory) SetThreshold(name string, quantity int64) error {
	if len(inv.FindByName(name)) == 0 {
		return fmt.Errorf("setting threshold of %s: %w", name, ports.ErrDrugNotFound)
	}
	for i := range inv.thresholds {
		if sameName(inv.thresholds[i].Name, name) {
			inv.thresholds[i].Quantity = quantity
			return nil
		}
	}
	inv.thresholds = append(inv.thresholds, drug.Threshold{Name: name, Quantity: quantity})
	return nil
}

// Thresholds implements ports.Inventory.
func (inv *Inventory) Thresholds() []drug.Threshold {
	return append([]drug.Threshold(nil), inv.thresholds...)
}

// ThresholdOf implements ports.Inventory.
func (inv *Inventory) ThresholdOf(name string) (int64, bool) {
	for _, t := range inv.thresholds {
		if sameName(t.Name, name) {
			return t.Quantity, true
		}
	}
	return 0, false
}

// SetDescription implements ports.Inventory.
func (inv *Inventory) SetDescription(name, text string) error {
	if len(inv.FindByName(name)) == 0 {
		return fmt.Errorf("describing %s: %w", name, ports.ErrDrugNotFound)
	}
	inv.putDescription(name, text)
	return nil
}

func (inv *Inventory) putDescription(name, text string) {
	for i := range inv.descriptions {
		if sameName(inv.descriptions[i].Name, name) {
			inv.descriptions[i].Text = text
			return
		}
	}
	inv.descriptions = append(inv.descriptions, drug.Description{Name: name, Text: text})
}

// Description implements ports.Inventory.
func (inv *Inventory) Description(name string) (string, bool) {
	for _, d := range inv.descriptions {
		if sameName(d.Name, name) {
			return d.Text, true
		}
	}
	return "", false
}

// Descriptions implements ports.Inventory.
func (inv *Inventory) Descriptions() []drug.Description {
	return append([]drug.Description(nil), inv.descriptions...)
}
