package cart

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

// Cart holds the lines of the current cart in the order they were first added.
type Cart struct {
	items []drug.Drug
}

// NewCart creates an empty Cart.
func NewCart() *Cart {
	return &Cart{}
}

var _ ports.Cart = (*Cart)(nil)

// IsEmpty implements ports.Cart.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []drug.Drug {
	return append([]drug.Drug(nil), c.items...)
}

func (c *Cart) indexOf(name string) int {
	for i, item := range c.items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}

// Add implements ports.Cart.
func (c *Cart) Add(item drug.Drug) {
	if i := c.indexOf(item.Name); i >= 0 {
		c.items[i].Quantity += item.Quantity
		return
	}
	c.items = append(c.items, item)
}

// QuantityOf implements ports.Cart.
func (c *Cart) QuantityOf(name string) int64 {
	if i := c.indexOf(name); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Remove implements ports.Cart. A line drained to zero leaves the cart.
func (c *Cart) Remove(name string, qty int64) error {
	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("removing %s from cart: %w", name, ports.ErrDrugNotFound)
	}
	if c.items[i].Quantity < qty {
		return fmt.Errorf("removing %d of %s from cart (have %d): %w", qty, name, c.items[i].Quantity, ports.ErrInsufficientStock)
	}
	c.items[i].Quantity -= qty
	if c.items[i].Quantity == 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	return nil
}

// Clear implements ports.Cart.
func (c *Cart) Clear() {
	c.items = nil
}
