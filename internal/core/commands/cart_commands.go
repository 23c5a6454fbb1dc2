package commands

import (
	"fmt"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
)

const (
	AddToCartWord = "addToCart"
	ViewCartWord  = "viewCart"
	CheckOutWord  = "checkOut"
)

var (
	AddToCartUsage = usage(AddToCartWord,
		"Adds a drug to the current cart.\nParameters: /n NAME /q QUANTITY",
		AddToCartWord+" /n Panadol /q 2")
	ViewCartUsage = usage(ViewCartWord, "View the current cart items.", ViewCartWord)
	CheckOutUsage = usage(CheckOutWord,
		"Checks out the current cart, removing its content from the inventory.",
		CheckOutWord)
)

const (
	MessageAddToCartSuccess  = "New drug added in the current cart: %s (quantity %d)"
	MessageInsufficientStock = "Not enough %s in stock: requested %d, available %d."
	MessageViewCartSuccess   = "Listed all the content of your cart. "
	MessageCartEmpty         = "Your cart is empty. "
	MessageCheckOutSuccess   = "Cart has been checked out. %d drug line(s) removed from stock."
	MessageCheckOutFailure   = "Checkout failed: not enough %s in stock (%d in cart, %d available). Your cart was kept."
	MessageCheckOutStopped   = "Checkout stopped at %s: %v. Lines not yet checked out stay in your cart."
)

// AddToCartCommand puts a quantity of an inventory drug into the cart.
type AddToCartCommand struct {
	Name     string
	Quantity int64
}

func (AddToCartCommand) Word() string { return AddToCartWord }

func (c AddToCartCommand) Execute(env Env) (Result, error) {
	records := env.Inventory.FindByName(c.Name)
	if len(records) == 0 {
		return NewResult(fmt.Sprintf(MessageDrugNotFound, c.Name)), nil
	}
	available := env.Inventory.StockOf(c.Name) - env.Cart.QuantityOf(c.Name)
	if c.Quantity > available {
		return NewResult(fmt.Sprintf(MessageInsufficientStock, c.Name, c.Quantity, available)), nil
	}
	first := records[0]
	env.Cart.Add(drug.Drug{
		Name:         first.Name,
		ExpiryDate:   first.ExpiryDate,
		SerialNumber: first.SerialNumber,
		Quantity:     c.Quantity,
	})
	return NewResult(fmt.Sprintf(MessageAddToCartSuccess, first.Name, c.Quantity)), nil
}

// ViewCartCommand lists the cart content.
type ViewCartCommand struct{}

func (ViewCartCommand) Word() string { return ViewCartWord }

func (ViewCartCommand) Execute(env Env) (Result, error) {
	if env.Cart.IsEmpty() {
		return NewResult(MessageCartEmpty), nil
	}
	return NewResultWithDrugs(MessageViewCartSuccess, env.Cart.Items()), nil
}

// CheckOutCommand deducts every cart line from stock and empties the cart.
// Stock is checked for every line first so a failed checkout changes nothing.
type CheckOutCommand struct{}

func (CheckOutCommand) Word() string { return CheckOutWord }

func (CheckOutCommand) Execute(env Env) (Result, error) {
	if env.Cart.IsEmpty() {
		return NewResult(MessageCartEmpty), nil
	}
	items := env.Cart.Items()
	for _, item := range items {
		if stock := env.Inventory.StockOf(item.Name); stock < item.Quantity {
			return NewResult(fmt.Sprintf(MessageCheckOutFailure, item.Name, item.Quantity, stock)), nil
		}
	}
	for i, item := range items {
		if err := env.Inventory.Deduct(item.Name, item.Quantity); err != nil {
			// Lines already deducted leave the cart so a retry cannot deduct them twice.
			for _, done := range items[:i] {
				_ = env.Cart.Remove(done.Name, done.Quantity)
			}
			return NewResult(fmt.Sprintf(MessageCheckOutStopped, item.Name, err)), nil
		}
	}
	env.Cart.Clear()
	return NewResultWithDrugs(fmt.Sprintf(MessageCheckOutSuccess, len(items)), items), nil
}
