package commandparser

import (
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/core/domain/command"
)

// strategy turns the argument remainder of a line into a command.
type strategy func(arguments string) commands.Command

// Parser turns raw input lines into commands. It holds no mutable state.
type Parser struct {
	table map[string]strategy
}

// NewParser creates a Parser with every known command word registered.
func NewParser() *Parser {
	p := &Parser{table: make(map[string]strategy)}

	// Words without arguments ignore any trailing text.
	for _, c := range []commands.Command{
		commands.ExitCommand{},
		commands.HelpCommand{},
		commands.ListCommand{},
		commands.SaveCommand{},
		commands.LoginCommand{},
		commands.RegisterCommand{},
		commands.ViewCartCommand{},
		commands.ShowStockLevelCommand{},
		commands.ListVendorCommand{},
		commands.ListThresholdCommand{},
		commands.ListDescriptionsCommand{},
		commands.CheckOutCommand{},
	} {
		p.table[c.Word()] = fixed(c)
	}

	for _, r := range flagRules() {
		p.table[r.word] = r.parse
	}

	p.table[commands.FindWord] = parseFind
	p.table[commands.AddVendorWord] = parseAddVendor
	p.table[commands.AddVendorSupplyWord] = parseAddVendorSupply
	p.table[commands.ListVendorSupplyWord] = parseListVendorSupply
	p.table[commands.FindVendorSupplyWord] = parseFindVendorSupply

	return p
}

// Parse never fails: input that does not parse yields an IncorrectCommand
// carrying the relevant usage text.
func (p *Parser) Parse(raw string) commands.Command {
	line := command.Split(raw)
	parse, ok := p.table[line.Word]
	if !ok {
		return incorrect(line.Word, commands.MessageInvalidCommandFormat, commands.HelpUsage)
	}
	return parse(line.Arguments)
}

// Words returns every registered command word.
func (p *Parser) Words() []string {
	words := make([]string, 0, len(p.table))
	for w := range p.table {
		words = append(words, w)
	}
	return words
}

func fixed(c commands.Command) strategy {
	return func(string) commands.Command { return c }
}

// parseFind expects "<criterion> <keyword...>".
func parseFind(arguments string) commands.Command {
	head := command.Split(arguments)
	criterion, ok := commands.ParseCriterion(head.Word)
	if !ok || head.Arguments == "" {
		return incorrect(commands.FindWord, commands.MessageInvalidCommandFormat, commands.FindUsage)
	}
	return commands.FindCommand{Keyword: head.Arguments, Criterion: criterion}
}

// parseAddVendor expects exactly one token; vendor names do not contain spaces.
func parseAddVendor(arguments string) commands.Command {
	fields := strings.Fields(arguments)
	if len(fields) != 1 {
		return incorrect(commands.AddVendorWord, commands.MessageInvalidCommandFormat, commands.AddVendorUsage)
	}
	return commands.AddVendorCommand{VendorName: fields[0]}
}

// parseAddVendorSupply expects "<vendor> <drug name...>".
func parseAddVendorSupply(arguments string) commands.Command {
	head := command.Split(arguments)
	if head.Word == "" || head.Arguments == "" {
		return incorrect(commands.AddVendorSupplyWord, commands.MessageInvalidCommandFormat, commands.AddVendorSupplyUsage)
	}
	return commands.AddVendorSupplyCommand{VendorName: head.Word, DrugName: head.Arguments}
}

func parseListVendorSupply(arguments string) commands.Command {
	fields := strings.Fields(arguments)
	if len(fields) != 1 {
		return incorrect(commands.ListVendorSupplyWord, commands.MessageInvalidCommandFormat, commands.ListVendorSupplyUsage)
	}
	return commands.ListVendorSupplyCommand{VendorName: fields[0]}
}

func parseFindVendorSupply(arguments string) commands.Command {
	if arguments == "" {
		return incorrect(commands.FindVendorSupplyWord, commands.MessageInvalidCommandFormat, commands.FindVendorSupplyUsage)
	}
	return commands.FindVendorSupplyCommand{DrugName: arguments}
}
