package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/olekukonko/tablewriter"
)

// Numbered renders a Result as plain text: the drug list numbered from 1,
// a blank line, then the feedback. Without a drug list only the feedback is
// returned.
func Numbered(r commands.Result) string {
	if !r.HasDrugs() {
		return r.Feedback
	}
	var b strings.Builder
	for i, d := range r.Drugs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}
	b.WriteString("\n")
	b.WriteString(r.Feedback)
	return b.String()
}

// Printer writes Results to a terminal.
type Printer struct {
	Out io.Writer
	// Tables renders drug lists as a table instead of numbered lines.
	Tables bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, tables bool) *Printer {
	return &Printer{Out: out, Tables: tables}
}

// PrintResult writes the drug list, if any, followed by the feedback.
func (p *Printer) PrintResult(r commands.Result) {
	if !r.HasDrugs() {
		fmt.Fprintln(p.Out, InfoColor(r.Feedback))
		return
	}
	if !p.Tables {
		fmt.Fprintln(p.Out, Numbered(r))
		return
	}

	table := tablewriter.NewWriter(p.Out)
	table.SetHeader([]string{"#", "Name", "Expiry date", "Serial number", "Quantity"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for i, d := range r.Drugs {
		table.Append([]string{
			strconv.Itoa(i + 1),
			DrugNameColor(d.Name),
			d.ExpiryDate,
			d.SerialNumber,
			QuantityColor(strconv.FormatInt(d.Quantity, 10)),
		})
	}
	table.Render()
	fmt.Fprintln(p.Out, InfoColor(r.Feedback))
}

// PrintError writes a failure the shell survives.
func (p *Printer) PrintError(err error) {
	fmt.Fprintln(p.Out, ErrorColor(fmt.Sprintf("Error: %v", err)))
}
