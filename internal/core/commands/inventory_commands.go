package commands

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

const (
	AddWord            = "add"
	DeleteWord         = "delete"
	ListWord           = "list"
	FindWord           = "find"
	ShowStockLevelWord = "showStockLevel"
)

var (
	AddUsage = usage(AddWord,
		"Adds a new drug to the drug list.\nParameters: /n NAME /d EXPIRY_DATE /s SERIAL_NUMBER /q QUANTITY",
		AddWord+" /n Panadol /d 01/02/2024 /s PA12345 /q 52")
	DeleteUsage = usage(DeleteWord,
		"Deletes every stock entry of a drug.\nParameters: /n NAME",
		DeleteWord+" /n Panadol")
	ListUsage = usage(ListWord, "Lists all drugs in the inventory.", ListWord)
	FindUsage = usage(FindWord,
		"Finds drugs by name (/n), expiry date (/d) or serial number (/s).\nParameters: /n|/d|/s KEYWORD",
		FindWord+" /n Panadol")
	ShowStockLevelUsage = usage(ShowStockLevelWord,
		"Lists all drugs by quantity level, lowest first, and flags those at or below their threshold.",
		ShowStockLevelWord)
)

const (
	MessageAddSuccess       = "New drug added in the inventory: %s"
	MessageDuplicateSerial  = "A drug with serial number %s is already in the inventory."
	MessageQuantityOverflow = "Cannot add %s: total stock would exceed %d."
	MessageDeleteSuccess    = "Drug removed from inventory: %s"
	MessageDrugNotFound     = "Drug not found in inventory: %s"
	MessageListSuccess      = "Listed all drugs in the inventory."
	MessageInventoryEmpty   = "There are no drugs in the inventory."
	MessageFindSuccess      = "Listed all drugs with the keyword in the inventory."
	MessageFindNoMatch      = "There are no drugs that match the keyword."
	MessageStockLevel       = "Listed all drugs by quantity level."
	MessageBelowThresholdOn = "At or below threshold: %s"
)

// AddCommand adds a stock entry to the inventory.
type AddCommand struct {
	Name         string
	ExpiryDate   string
	SerialNumber string
	Quantity     int64
}

func (AddCommand) Word() string { return AddWord }

func (c AddCommand) Execute(env Env) (Result, error) {
	d := drug.Drug{
		Name:         c.Name,
		ExpiryDate:   c.ExpiryDate,
		SerialNumber: c.SerialNumber,
		Quantity:     c.Quantity,
	}
	if err := env.Inventory.Add(d); err != nil {
		if errors.Is(err, ports.ErrDuplicateSerial) {
			return NewResult(fmt.Sprintf(MessageDuplicateSerial, c.SerialNumber)), nil
		}
		if errors.Is(err, ports.ErrQuantityOverflow) {
			return NewResult(fmt.Sprintf(MessageQuantityOverflow, c.Name, int64(math.MaxInt64))), nil
		}
		return NewResult(fmt.Sprintf("Could not add %s: %v", c.Name, err)), nil
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, d)), nil
}

// DeleteCommand removes every entry for a drug name.
type DeleteCommand struct {
	Name string
}

func (DeleteCommand) Word() string { return DeleteWord }

func (c DeleteCommand) Execute(env Env) (Result, error) {
	if env.Inventory.DeleteByName(c.Name) == 0 {
		return NewResult(fmt.Sprintf(MessageDrugNotFound, c.Name)), nil
	}
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, c.Name)), nil
}

// ListCommand lists the whole inventory.
type ListCommand struct{}

func (ListCommand) Word() string { return ListWord }

func (ListCommand) Execute(env Env) (Result, error) {
	all := env.Inventory.All()
	if len(all) == 0 {
		return NewResult(MessageInventoryEmpty), nil
	}
	return NewResultWithDrugs(MessageListSuccess, all), nil
}

// Criterion selects the field a FindCommand matches against.
type Criterion string

const (
	ByName         Criterion = "/n"
	ByExpiryDate   Criterion = "/d"
	BySerialNumber Criterion = "/s"
)

// ParseCriterion maps a flag token to a Criterion.
func ParseCriterion(token string) (Criterion, bool) {
	switch Criterion(token) {
	case ByName, ByExpiryDate, BySerialNumber:
		return Criterion(token), true
	}
	return "", false
}

func (c Criterion) field(d drug.Drug) string {
	switch c {
	case ByExpiryDate:
		return d.ExpiryDate
	case BySerialNumber:
		return d.SerialNumber
	default:
		return d.Name
	}
}

// FindCommand lists drugs whose selected field contains the keyword, ignoring case.
type FindCommand struct {
	Keyword   string
	Criterion Criterion
}

func (FindCommand) Word() string { return FindWord }

func (c FindCommand) Execute(env Env) (Result, error) {
	keyword := strings.ToLower(c.Keyword)
	var matches []drug.Drug
	for _, d := range env.Inventory.All() {
		if strings.Contains(strings.ToLower(c.Criterion.field(d)), keyword) {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		return NewResult(MessageFindNoMatch), nil
	}
	return NewResultWithDrugs(MessageFindSuccess, matches), nil
}

// ShowStockLevelCommand lists the inventory sorted by quantity, lowest first.
type ShowStockLevelCommand struct{}

func (ShowStockLevelCommand) Word() string { return ShowStockLevelWord }

func (ShowStockLevelCommand) Execute(env Env) (Result, error) {
	all := env.Inventory.All()
	if len(all) == 0 {
		return NewResult(MessageInventoryEmpty), nil
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Quantity < all[j].Quantity })

	var low []string
	seen := make(map[string]bool)
	for _, d := range all {
		key := strings.ToLower(d.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		if threshold, ok := env.Inventory.ThresholdOf(d.Name); ok && env.Inventory.StockOf(d.Name) <= threshold {
			low = append(low, d.Name)
		}
	}

	feedback := MessageStockLevel
	if len(low) > 0 {
		feedback += "\n" + fmt.Sprintf(MessageBelowThresholdOn, strings.Join(low, ", "))
	}
	return NewResultWithDrugs(feedback, all), nil
}
