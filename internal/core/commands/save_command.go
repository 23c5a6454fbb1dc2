package commands

import (
	"errors"
	"fmt"
)

const SaveWord = "save"

var SaveUsage = usage(SaveWord,
	"Saves the drug list so it is loaded into the inventory when the program starts.",
	SaveWord)

const MessageSaveSuccess = "Drugs successfully saved."

// ErrNoDataFile is returned by SaveCommand when the environment has no target file.
var ErrNoDataFile = errors.New("no data file configured")

// SaveCommand rewrites the data file with one line per inventory record.
type SaveCommand struct{}

func (SaveCommand) Word() string { return SaveWord }

func (SaveCommand) Execute(env Env) (Result, error) {
	if env.Storage == nil || env.DataFile == "" {
		return Result{}, ErrNoDataFile
	}
	if err := env.Storage.WriteFile(env.DataFile, ""); err != nil {
		return Result{}, fmt.Errorf("failed to reset data file %s: %w", env.DataFile, err)
	}
	for _, d := range env.Inventory.All() {
		if err := env.Storage.AppendFile(env.DataFile, d.String()); err != nil {
			return Result{}, fmt.Errorf("failed to save %s to %s: %w", d.Name, env.DataFile, err)
		}
	}
	return NewResult(MessageSaveSuccess), nil
}
