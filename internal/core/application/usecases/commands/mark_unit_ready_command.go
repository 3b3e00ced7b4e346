package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrMarkUnitReadyCommandIsNotConstructed = errors.New(
		"MarkUnitReadyCommand must be created via NewMarkUnitReadyCommand constructor",
	)
)

// MarkUnitReadyCommand represents the winding operator marking a unit
// ready for unload, advancing it from Wikkelen to Lossen.
type MarkUnitReadyCommand struct { //nolint:recvcheck //using for validation
	lotNumber string
	actor     string

	guard guard.ConstructorGuard
}

// NewMarkUnitReadyCommand creates a command to advance a freshly wound
// unit towards unload inspection.
func NewMarkUnitReadyCommand(lotNumber, actor string) (MarkUnitReadyCommand, error) {
	cmd := MarkUnitReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLotNumber(lotNumber),
		cmd.setActor(actor),
	); err != nil {
		return MarkUnitReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkUnitReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkUnitReadyCommandIsNotConstructed)
}

// LotNumber returns the unit's encoded lot number.
func (c MarkUnitReadyCommand) LotNumber() string {
	return c.lotNumber
}

// Actor returns who marks the unit ready.
func (c MarkUnitReadyCommand) Actor() string {
	return c.actor
}

func (c *MarkUnitReadyCommand) setLotNumber(lotNumber string) error {
	if lotNumber == "" {
		return errs.NewValueIsRequiredError("lot number")
	}
	c.lotNumber = lotNumber
	return nil
}

func (c *MarkUnitReadyCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
