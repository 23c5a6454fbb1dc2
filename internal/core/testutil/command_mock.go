package testutil

import "github.com/AntonioJCosta/stocker/internal/core/commands"

// MockCommand is a mock implementation of commands.Command.
type MockCommand struct {
	WordValue   string
	ExecuteFunc func(env commands.Env) (commands.Result, error)
	// ExecuteCalls counts how many times Execute ran.
	ExecuteCalls int
}

func (m *MockCommand) Word() string { return m.WordValue }

func (m *MockCommand) Execute(env commands.Env) (commands.Result, error) {
	m.ExecuteCalls++
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(env)
	}
	return commands.NewResult(""), nil
}

// MockParser returns a fixed command for every line and records the lines it saw.
type MockParser struct {
	ParseFunc  func(raw string) commands.Command
	ParseCalls []string
}

func (m *MockParser) Parse(raw string) commands.Command {
	m.ParseCalls = append(m.ParseCalls, raw)
	if m.ParseFunc != nil {
		return m.ParseFunc(raw)
	}
	return &MockCommand{WordValue: raw}
}

var _ commands.Command = (*MockCommand)(nil)
