/*
Package drug defines the core domain entity for a stocked drug.
*/
package drug

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned by ParseLine when a line is not a drug record.
var ErrMalformedLine = errors.New("malformed drug record")

/*
Drug is one stock entry: a named drug with its expiry date, serial number
and the quantity on hand. This is a core domain entity.
*/
type Drug struct {
	Name         string
	ExpiryDate   string
	SerialNumber string
	Quantity     int64
}

// linePattern is greedy on the name so names containing commas still round-trip.
var linePattern = regexp.MustCompile(`^Name: (.*), Expiry date: (.*), Serial number: (.*), Quantity: (\d+)$`)

// String renders the drug in its persisted one-line form.
func (d Drug) String() string {
	return fmt.Sprintf("Name: %s, Expiry date: %s, Serial number: %s, Quantity: %d",
		d.Name, d.ExpiryDate, d.SerialNumber, d.Quantity)
}

// ParseLine is the inverse of String.
func ParseLine(line string) (Drug, error) {
	m := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return Drug{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	qty, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return Drug{}, fmt.Errorf("%w: quantity %q: %v", ErrMalformedLine, m[4], err)
	}
	return Drug{
		Name:         m[1],
		ExpiryDate:   m[2],
		SerialNumber: m[3],
		Quantity:     qty,
	}, nil
}
