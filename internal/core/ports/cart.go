package ports

import "github.com/AntonioJCosta/stocker/internal/core/domain/drug"

// Cart defines the contract for the current shopping cart.
type Cart interface {
	IsEmpty() bool
	// Items returns the cart lines in the order they were first added.
	Items() []drug.Drug
	// Add merges qty into an existing line for the same name, or appends a new line.
	Add(item drug.Drug)
	// QuantityOf returns the quantity already in the cart for the name.
	QuantityOf(name string) int64
	// Remove takes qty units of the named line out of the cart, dropping the line when it reaches zero.
	Remove(name string, qty int64) error
	Clear()
}
