/*
Package commands holds the executable commands produced by the parser and the
uniform Result every command returns.
*/
package commands

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

// Command is a validated unit of work. It is executed once and keeps no state between runs.
type Command interface {
	// Word returns the command word the command was parsed from.
	Word() string
	// Execute runs the command against the stores in env. Only commands that
	// touch persistence return a non-nil error.
	Execute(env Env) (Result, error)
}

// Env carries the collaborators a command may read or mutate. Commands never own them.
type Env struct {
	Inventory ports.Inventory
	Cart      ports.Cart
	Vendors   ports.VendorDirectory
	Storage   ports.DrugStorage
	// DataFile is the path the save command writes to.
	DataFile string
}

// Parse-failure messages. Each takes the usage text of the command concerned.
const (
	MessageInvalidCommandFormat = "Invalid command format!\n%s"
	MessageInvalidQuantity      = "Quantity must be a positive whole number!\n%s"
	MessageInvalidName          = "Drug name cannot be empty!\n%s"
	MessageInvalidThreshold     = "Threshold quantity must be a whole number of 0 or more!\n%s"
	MessageInvalidSerialNumber  = "Serial number cannot be empty!\n%s"
	MessageInvalidExpiryDate    = "Expiry date cannot be empty!\n%s"
)

// IsExit reports whether c asks the dispatch loop to stop.
func IsExit(c Command) bool {
	_, ok := c.(ExitCommand)
	return ok
}

func usage(word, description, example string) string {
	return word + ": " + description + "\n" + "Example: " + example
}

// numbered renders names as "1. a\n2. b".
func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}
