package commands

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSubmitInspectionCommandIsNotConstructed = errors.New(
		"SubmitInspectionCommand must be created via NewSubmitInspectionCommand constructor",
	)
)

// SubmitInspectionCommand represents a quality-check decision taken at a
// checkpoint station: the outcome, the measurements taken, and for any
// non-approved outcome the reason codes explaining it.
//
// Measurement values are numeric strings (operators key them in on the
// floor); each value must parse as a decimal number. Which measurement
// field is required depends on the unit's item class and is checked by the
// handler, where the unit is known.
//
// Example:
//
//	cmd, err := NewSubmitInspectionCommand(
//	    "402635011400001",
//	    unit.OutcomeTemporaryReject,
//	    map[string]string{"wanddikte": "4.5"},
//	    []string{"Beschadiging"},
//	    "surface damage near weld",
//	    "inspector-3",
//	)
type SubmitInspectionCommand struct { //nolint:recvcheck //using for validation
	lotNumber    string
	outcome      unit.Outcome
	measurements map[string]string
	reasons      []string
	note         string
	actor        string

	guard guard.ConstructorGuard
}

// NewSubmitInspectionCommand creates a validated inspection submission.
// Reason codes are required for any outcome other than approved; every
// supplied measurement value must be a parseable decimal number.
func NewSubmitInspectionCommand(
	lotNumber string,
	outcome unit.Outcome,
	measurements map[string]string,
	reasons []string,
	note string,
	actor string,
) (SubmitInspectionCommand, error) {
	cmd := SubmitInspectionCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLotNumber(lotNumber),
		cmd.setOutcome(outcome),
		cmd.setMeasurements(measurements),
		cmd.setReasons(outcome, reasons),
		cmd.setActor(actor),
	); err != nil {
		return SubmitInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitInspectionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitInspectionCommandIsNotConstructed)
}

// LotNumber returns the inspected unit's encoded lot number.
func (c SubmitInspectionCommand) LotNumber() string {
	return c.lotNumber
}

// Outcome returns the inspection decision.
func (c SubmitInspectionCommand) Outcome() unit.Outcome {
	return c.outcome
}

// Measurements returns a copy of the submitted measurement set.
func (c SubmitInspectionCommand) Measurements() map[string]string {
	copied := make(map[string]string, len(c.measurements))
	for k, v := range c.measurements {
		copied[k] = v
	}
	return copied
}

// Reasons returns a copy of the reason codes.
func (c SubmitInspectionCommand) Reasons() []string {
	return append([]string(nil), c.reasons...)
}

// Note returns the free-text note, possibly empty.
func (c SubmitInspectionCommand) Note() string {
	return c.note
}

// Actor returns who performed the inspection.
func (c SubmitInspectionCommand) Actor() string {
	return c.actor
}

func (c *SubmitInspectionCommand) setLotNumber(lotNumber string) error {
	if lotNumber == "" {
		return errs.NewValueIsRequiredError("lot number")
	}
	c.lotNumber = lotNumber
	return nil
}

func (c *SubmitInspectionCommand) setOutcome(outcome unit.Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	c.outcome = outcome
	return nil
}

func (c *SubmitInspectionCommand) setMeasurements(measurements map[string]string) error {
	copied := make(map[string]string, len(measurements))
	for field, value := range measurements {
		if _, err := decimal.NewFromString(value); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("measurement %q", field),
				fmt.Errorf("%q is not a numeric value", value))
		}
		copied[field] = value
	}
	c.measurements = copied
	return nil
}

func (c *SubmitInspectionCommand) setReasons(outcome unit.Outcome, reasons []string) error {
	if outcome != unit.OutcomeApproved && len(reasons) == 0 {
		return errs.NewValueIsRequiredError("reason codes")
	}
	c.reasons = append([]string(nil), reasons...)
	return nil
}

func (c *SubmitInspectionCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
