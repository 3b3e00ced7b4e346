package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrReleaseHoldCommandIsNotConstructed = errors.New(
		"ReleaseHoldCommand must be created via NewReleaseHoldCommand constructor",
	)
)

// ReleaseHoldCommand represents releasing a held unit back into the flow
// after rework, re-entering at the step it was held from.
type ReleaseHoldCommand struct { //nolint:recvcheck //using for validation
	lotNumber string
	actor     string

	guard guard.ConstructorGuard
}

// NewReleaseHoldCommand creates a command to release a unit from the hold
// area.
func NewReleaseHoldCommand(lotNumber, actor string) (ReleaseHoldCommand, error) {
	cmd := ReleaseHoldCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLotNumber(lotNumber),
		cmd.setActor(actor),
	); err != nil {
		return ReleaseHoldCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseHoldCommand) Validate() error {
	return c.guard.Validate(ErrReleaseHoldCommandIsNotConstructed)
}

// LotNumber returns the held unit's encoded lot number.
func (c ReleaseHoldCommand) LotNumber() string {
	return c.lotNumber
}

// Actor returns who releases the unit.
func (c ReleaseHoldCommand) Actor() string {
	return c.actor
}

func (c *ReleaseHoldCommand) setLotNumber(lotNumber string) error {
	if lotNumber == "" {
		return errs.NewValueIsRequiredError("lot number")
	}
	c.lotNumber = lotNumber
	return nil
}

func (c *ReleaseHoldCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
