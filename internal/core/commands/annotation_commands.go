package commands

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/stocker/internal/core/ports"
)

const (
	SetThresholdWord     = "setThreshold"
	ListThresholdWord    = "listThreshold"
	AddDescriptionWord   = "addDescription"
	GetDescriptionWord   = "getDescription"
	ListDescriptionsWord = "listDescriptions"
)

var (
	SetThresholdUsage = usage(SetThresholdWord,
		"Sets the threshold quantity of a drug.\nParameters: /n NAME /tq THRESHOLD_QUANTITY",
		SetThresholdWord+" /n Panadol /tq 100")
	ListThresholdUsage = usage(ListThresholdWord,
		"Lists the threshold quantity of every drug that has one.", ListThresholdWord)
	AddDescriptionUsage = usage(AddDescriptionWord,
		"Adds a description to a drug.\nParameters: /n NAME /desc DESCRIPTION",
		AddDescriptionWord+" /n Panadol /desc Relieves headaches and fever")
	GetDescriptionUsage = usage(GetDescriptionWord,
		"Shows the description of a drug.\nParameters: /n NAME",
		GetDescriptionWord+" /n Panadol")
	ListDescriptionsUsage = usage(ListDescriptionsWord,
		"Lists every drug description.", ListDescriptionsWord)
)

const (
	MessageSetThresholdSuccess   = "Threshold quantity set for %s: %d"
	MessageListThresholdSuccess  = "Listed all threshold quantities."
	MessageNoThresholds          = "No threshold quantities have been set."
	MessageAddDescriptionSuccess = "Description added for %s: %s"
	MessageGetDescription        = "Description for %s: %s"
	MessageNoDescription         = "Description not available for %s"
	MessageListDescriptions      = "Listed all drug descriptions."
	MessageNoDescriptions        = "No descriptions available."
)

// SetThresholdCommand sets the low-stock threshold of a drug.
type SetThresholdCommand struct {
	Name      string
	Threshold int64
}

func (SetThresholdCommand) Word() string { return SetThresholdWord }

func (c SetThresholdCommand) Execute(env Env) (Result, error) {
	if err := env.Inventory.SetThreshold(c.Name, c.Threshold); err != nil {
		if errors.Is(err, ports.ErrDrugNotFound) {
			return NewResult(fmt.Sprintf(MessageDrugNotFound, c.Name)), nil
		}
		return NewResult(fmt.Sprintf("Could not set threshold for %s: %v", c.Name, err)), nil
	}
	return NewResult(fmt.Sprintf(MessageSetThresholdSuccess, c.Name, c.Threshold)), nil
}

// ListThresholdCommand lists every threshold.
type ListThresholdCommand struct{}

func (ListThresholdCommand) Word() string { return ListThresholdWord }

func (ListThresholdCommand) Execute(env Env) (Result, error) {
	thresholds := env.Inventory.Thresholds()
	if len(thresholds) == 0 {
		return NewResult(MessageNoThresholds), nil
	}
	lines := make([]string, 0, len(thresholds))
	for _, t := range thresholds {
		lines = append(lines, fmt.Sprintf("%s: %d", t.Name, t.Quantity))
	}
	return NewResult(MessageListThresholdSuccess + "\n" + numbered(lines)), nil
}

// AddDescriptionCommand attaches a description to a drug.
type AddDescriptionCommand struct {
	Name        string
	Description string
}

func (AddDescriptionCommand) Word() string { return AddDescriptionWord }

func (c AddDescriptionCommand) Execute(env Env) (Result, error) {
	if err := env.Inventory.SetDescription(c.Name, c.Description); err != nil {
		if errors.Is(err, ports.ErrDrugNotFound) {
			return NewResult(fmt.Sprintf(MessageDrugNotFound, c.Name)), nil
		}
		return NewResult(fmt.Sprintf("Could not add description for %s: %v", c.Name, err)), nil
	}
	return NewResult(fmt.Sprintf(MessageAddDescriptionSuccess, c.Name, c.Description)), nil
}

// GetDescriptionCommand shows a drug's description.
type GetDescriptionCommand struct {
	Name string
}

func (GetDescriptionCommand) Word() string { return GetDescriptionWord }

func (c GetDescriptionCommand) Execute(env Env) (Result, error) {
	text, ok := env.Inventory.Description(c.Name)
	if !ok {
		return NewResult(fmt.Sprintf(MessageNoDescription, c.Name)), nil
	}
	return NewResult(fmt.Sprintf(MessageGetDescription, c.Name, text)), nil
}

// ListDescriptionsCommand lists every description.
type ListDescriptionsCommand struct{}

func (ListDescriptionsCommand) Word() string { return ListDescriptionsWord }

func (ListDescriptionsCommand) Execute(env Env) (Result, error) {
	descriptions := env.Inventory.Descriptions()
	if len(descriptions) == 0 {
		return NewResult(MessageNoDescriptions), nil
	}
	lines := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Name, d.Text))
	}
	return NewResult(MessageListDescriptions + "\n" + numbered(lines)), nil
}
