package commands

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

const (
	AddVendorWord        = "addVendor"
	ListVendorWord       = "listVendor"
	AddVendorSupplyWord  = "addVendorSupply"
	ListVendorSupplyWord = "listVendorSupply"
	FindVendorSupplyWord = "findVendorSupply"
)

var (
	AddVendorUsage = usage(AddVendorWord,
		"Adds a new vendor to the vendors list. Vendor names are a single word.\nParameters: VENDOR_NAME",
		AddVendorWord+" Moderna")
	ListVendorUsage      = usage(ListVendorWord, "Lists all vendors.", ListVendorWord)
	AddVendorSupplyUsage = usage(AddVendorSupplyWord,
		"Records that a vendor supplies a drug.\nParameters: VENDOR_NAME DRUG_NAME",
		AddVendorSupplyWord+" Moderna Paracetamol")
	ListVendorSupplyUsage = usage(ListVendorSupplyWord,
		"Lists the drugs a vendor supplies.\nParameters: VENDOR_NAME",
		ListVendorSupplyWord+" Moderna")
	FindVendorSupplyUsage = usage(FindVendorSupplyWord,
		"Lists the vendors supplying a drug.\nParameters: DRUG_NAME",
		FindVendorSupplyWord+" Paracetamol")
)

const (
	MessageAddVendorSuccess       = "New vendor added into the vendors list: %s"
	MessageDuplicateVendor        = "Vendor is already in the vendors list: %s"
	MessageListVendorSuccess      = "Listed all vendors in the list."
	MessageNoVendors              = "The vendors list is empty."
	MessageVendorNotFound         = "Vendor is not in the vendors list: %s"
	MessageAddVendorSupplySuccess = "New drug added to %s's supply list: %s"
	MessageDuplicateSupply        = "%s already supplies %s."
	MessageListVendorSupply       = "Drugs supplied by %s:"
	MessageVendorSuppliesNothing  = "%s does not supply any drugs yet."
	MessageFindVendorSupply       = "Vendors supplying %s:"
	MessageNoSuppliers            = "No vendors supply %s."
)

// AddVendorCommand registers a vendor.
type AddVendorCommand struct {
	VendorName string
}

func (AddVendorCommand) Word() string { return AddVendorWord }

func (c AddVendorCommand) Execute(env Env) (Result, error) {
	if err := env.Vendors.Add(c.VendorName); err != nil {
		if errors.Is(err, ports.ErrDuplicateVendor) {
			return NewResult(fmt.Sprintf(MessageDuplicateVendor, c.VendorName)), nil
		}
		return NewResult(fmt.Sprintf("Could not add vendor %s: %v", c.VendorName, err)), nil
	}
	return NewResult(fmt.Sprintf(MessageAddVendorSuccess, c.VendorName)), nil
}

// ListVendorCommand lists registered vendors.
type ListVendorCommand struct{}

func (ListVendorCommand) Word() string { return ListVendorWord }

func (ListVendorCommand) Execute(env Env) (Result, error) {
	all := env.Vendors.All()
	if len(all) == 0 {
		return NewResult(MessageNoVendors), nil
	}
	names := make([]string, 0, len(all))
	for _, v := range all {
		names = append(names, v.Name)
	}
	return NewResult(MessageListVendorSuccess + "\n" + numbered(names)), nil
}

// AddVendorSupplyCommand records that a vendor supplies a drug.
type AddVendorSupplyCommand struct {
	VendorName string
	DrugName   string
}

func (AddVendorSupplyCommand) Word() string { return AddVendorSupplyWord }

func (c AddVendorSupplyCommand) Execute(env Env) (Result, error) {
	err := env.Vendors.AddSupply(c.VendorName, c.DrugName)
	switch {
	case err == nil:
		return NewResult(fmt.Sprintf(MessageAddVendorSupplySuccess, c.VendorName, c.DrugName)), nil
	case errors.Is(err, ports.ErrVendorNotFound):
		return NewResult(fmt.Sprintf(MessageVendorNotFound, c.VendorName)), nil
	case errors.Is(err, ports.ErrDuplicateSupply):
		return NewResult(fmt.Sprintf(MessageDuplicateSupply, c.VendorName, c.DrugName)), nil
	default:
		return NewResult(fmt.Sprintf("Could not record supply: %v", err)), nil
	}
}

// ListVendorSupplyCommand lists what a vendor supplies.
type ListVendorSupplyCommand struct {
	VendorName string
}

func (ListVendorSupplyCommand) Word() string { return ListVendorSupplyWord }

func (c ListVendorSupplyCommand) Execute(env Env) (Result, error) {
	supplies, err := env.Vendors.Supplies(c.VendorName)
	if err != nil {
		return NewResult(fmt.Sprintf(MessageVendorNotFound, c.VendorName)), nil
	}
	if len(supplies) == 0 {
		return NewResult(fmt.Sprintf(MessageVendorSuppliesNothing, c.VendorName)), nil
	}
	return NewResult(fmt.Sprintf(MessageListVendorSupply, c.VendorName) + "\n" + numbered(supplies)), nil
}

// FindVendorSupplyCommand lists the vendors supplying a drug.
type FindVendorSupplyCommand struct {
	DrugName string
}

func (FindVendorSupplyCommand) Word() string { return FindVendorSupplyWord }

func (c FindVendorSupplyCommand) Execute(env Env) (Result, error) {
	suppliers := env.Vendors.SuppliersOf(c.DrugName)
	if len(suppliers) == 0 {
		return NewResult(fmt.Sprintf(MessageNoSuppliers, c.DrugName)), nil
	}
	return NewResult(fmt.Sprintf(MessageFindVendorSupply, c.DrugName) + "\n" + numbered(suppliers)), nil
}
