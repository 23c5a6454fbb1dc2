package commands

import "strings"

const (
	HelpWord     = "help"
	ExitWord     = "exit"
	LoginWord    = "login"
	RegisterWord = "register"
)

var (
	HelpUsage     = usage(HelpWord, "Shows program usage instructions.", HelpWord)
	ExitUsage     = usage(ExitWord, "Exits the program.", ExitWord)
	LoginUsage    = usage(LoginWord, "Logs in to the current session.", LoginWord)
	RegisterUsage = usage(RegisterWord, "Registers a new user for the current session.", RegisterWord)
)

const (
	MessageExit     = "Exiting Stocker program..."
	MessageLogin    = "You are already logged in."
	MessageRegister = "You are already registered."
)

// HelpCommand lists the usage of every command.
type HelpCommand struct{}

func (HelpCommand) Word() string { return HelpWord }

func (HelpCommand) Execute(Env) (Result, error) {
	return NewResult(strings.Join(AllUsages(), "\n\n")), nil
}

// ExitCommand ends the session. The dispatch loop checks IsExit after running it.
type ExitCommand struct{}

func (ExitCommand) Word() string { return ExitWord }

func (ExitCommand) Execute(Env) (Result, error) {
	return NewResult(MessageExit), nil
}

// LoginCommand is accepted for compatibility; the shell has no accounts.
type LoginCommand struct{}

func (LoginCommand) Word() string { return LoginWord }

func (LoginCommand) Execute(Env) (Result, error) {
	return NewResult(MessageLogin), nil
}

// RegisterCommand is accepted for compatibility; the shell has no accounts.
type RegisterCommand struct{}

func (RegisterCommand) Word() string { return RegisterWord }

func (RegisterCommand) Execute(Env) (Result, error) {
	return NewResult(MessageRegister), nil
}

// IncorrectCommand stands in for any input that failed to parse. Executing it
// returns the carried message and touches no store.
type IncorrectCommand struct {
	Attempted string
	Message   string
}

func (c IncorrectCommand) Word() string { return c.Attempted }

func (c IncorrectCommand) Execute(Env) (Result, error) {
	return NewResult(c.Message), nil
}

// AllUsages returns the usage text of every command in help order.
func AllUsages() []string {
	return []string{
		AddUsage,
		DeleteUsage,
		ListUsage,
		FindUsage,
		ShowStockLevelUsage,
		AddToCartUsage,
		ViewCartUsage,
		CheckOutUsage,
		SetThresholdUsage,
		ListThresholdUsage,
		AddDescriptionUsage,
		GetDescriptionUsage,
		ListDescriptionsUsage,
		AddVendorUsage,
		ListVendorUsage,
		AddVendorSupplyUsage,
		ListVendorSupplyUsage,
		FindVendorSupplyUsage,
		SaveUsage,
		LoginUsage,
		RegisterUsage,
		HelpUsage,
		ExitUsage,
	}
}
