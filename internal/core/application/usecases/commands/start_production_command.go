package commands

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrStartProductionCommandIsNotConstructed = errors.New(
		"StartProductionCommand must be created via NewStartProductionCommand constructor",
	)
)

// StartProductionCommand represents a request to start producing units
// against a planned order: mint lot numbers and register the units at
// their winding station.
//
// Example:
//
//	cmd, err := NewStartProductionCommand("ORD-100", "BH11", 2, 0, "operator-1")
//	if err != nil {
//	    return fmt.Errorf("invalid production request: %w", err)
//	}
//
//	handler := NewStartProductionCommandHandler(uowFactory, publisher, clock, logger)
//	lots, err := handler.Handle(ctx, cmd)
type StartProductionCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	station       string
	quantity      int
	startSequence int
	actor         string

	guard guard.ConstructorGuard
}

// NewStartProductionCommand creates a command to mint quantity units for
// the given order. Station may be empty, in which case the order's origin
// station is used. StartSequence 0 requests auto-computation from the unit
// registry; an explicit value is honored when it does not collide with
// already-minted sequences.
func NewStartProductionCommand(
	orderID string,
	station string,
	quantity int,
	startSequence int,
	actor string,
) (StartProductionCommand, error) {
	cmd := StartProductionCommand{
		station: station,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setQuantity(quantity),
		cmd.setStartSequence(startSequence),
		cmd.setActor(actor),
	); err != nil {
		return StartProductionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

// OrderID returns the order to produce against.
func (c StartProductionCommand) OrderID() string {
	return c.orderID
}

// Station returns the requested winding station, possibly empty.
func (c StartProductionCommand) Station() string {
	return c.station
}

// Quantity returns the number of units to mint.
func (c StartProductionCommand) Quantity() int {
	return c.quantity
}

// StartSequence returns the requested starting sequence, 0 meaning auto.
func (c StartProductionCommand) StartSequence() int {
	return c.startSequence
}

// Actor returns who starts the production run.
func (c StartProductionCommand) Actor() string {
	return c.actor
}

func (c *StartProductionCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}

func (c *StartProductionCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *StartProductionCommand) setStartSequence(startSequence int) error {
	if startSequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause("start sequence",
			fmt.Errorf("%d is negative", startSequence))
	}
	c.startSequence = startSequence
	return nil
}

func (c *StartProductionCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
