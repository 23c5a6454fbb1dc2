package ports

import "github.com/AntonioJCosta/stocker/internal/core/domain/drug"

/*
Inventory defines the contract for the mutable collection of drug records.
Records keep insertion order. Drug names are matched case-insensitively; a
name may own several records with different serial numbers.
*/
type Inventory interface {
	// All returns every record in insertion order.
	All() []drug.Drug
	// Add inserts a record. It returns ErrDuplicateSerial if the serial number is taken
	// and ErrQuantityOverflow if the stock of the name would no longer fit in an int64.
	Add(d drug.Drug) error
	FindByName(name string) []drug.Drug
	FindBySerial(serial string) (drug.Drug, bool)
	// DeleteByName removes every record with the given name and reports how many were removed.
	DeleteByName(name string) int
	// StockOf sums the quantity of all records with the given name.
	StockOf(name string) int64
	// Deduct removes qty units of the named drug, oldest records first.
	// It returns ErrDrugNotFound or ErrInsufficientStock and leaves stock untouched on error.
	Deduct(name string, qty int64) error
	// Replace swaps the whole record list, used when loading from disk.
	Replace(drugs []drug.Drug)

	// SetThreshold returns ErrDrugNotFound when no record carries the name.
	SetThreshold(name string, quantity int64) error
	Thresholds() []drug.Threshold
	ThresholdOf(name string) (int64, bool)

	// SetDescription returns ErrDrugNotFound when no record carries the name.
	SetDescription(name, text string) error
	Description(name string) (string, bool)
	Descriptions() []drug.Description
}
