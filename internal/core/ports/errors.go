package ports

import "errors"

// Errors returned by store implementations. Commands translate them into feedback.
var (
	ErrDuplicateSerial   = errors.New("a drug with this serial number already exists")
	ErrDrugNotFound      = errors.New("drug not found in inventory")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQuantityOverflow  = errors.New("total quantity too large")
	ErrDuplicateVendor   = errors.New("vendor already exists")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrDuplicateSupply   = errors.New("vendor already supplies this drug")
)
