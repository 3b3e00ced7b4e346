package unit

import (
	"fmt"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Outcome is the decision of a quality check at a checkpoint station.
type Outcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown Outcome = iota

	// OutcomeApproved passes the unit on to the next station.
	OutcomeApproved

	// OutcomeTemporaryReject parks the unit in HOLD_AREA pending rework.
	// Recoverable.
	OutcomeTemporaryReject

	// OutcomeRejected scraps the unit. Terminal.
	OutcomeRejected
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown:         "unknown",
		OutcomeApproved:        "approved",
		OutcomeTemporaryReject: "temporary_reject",
		OutcomeRejected:        "rejected",
	}
}

func getValidOutcomeStrings() map[Outcome]string {
	//nolint:exhaustive // OutcomeUnknown is intentionally excluded as it's invalid
	return map[Outcome]string{
		OutcomeApproved:        "approved",
		OutcomeTemporaryReject: "temporary_reject",
		OutcomeRejected:        "rejected",
	}
}

// Validate checks if the Outcome is one of the defined valid outcomes.
func (o Outcome) Validate() error {
	if _, ok := getValidOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome", fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

// String returns the wire name of the outcome.
// Implements fmt.Stringer and is safe on invalid values.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// ErrInspectionIsNotConstructed is returned when validating a zero-value
// Inspection that bypassed NewInspection.
var ErrInspectionIsNotConstructed = errs.NewValueIsRequiredError(
	"Inspection must be created via NewInspection",
)

// Inspection is the immutable record of one quality-check event. A unit
// accumulates inspections over its life; only the most recent one is
// authoritative for routing.
//
// Invariant: the reason list must be non-empty for any outcome other than
// approved, so that operators always know why a unit did not pass.
type Inspection struct {
	outcome Outcome
	reasons []string
	note    string
	at      time.Time

	guard guard.ConstructorGuard
}

// NewInspection creates a validated inspection record.
// Reasons are required (at least one non-empty code) when the outcome is
// not approved; the note is always optional.
func NewInspection(outcome Outcome, reasons []string, note string, at time.Time) (Inspection, error) {
	if err := outcome.Validate(); err != nil {
		return Inspection{}, err
	}

	if outcome != OutcomeApproved && len(reasons) == 0 {
		return Inspection{}, errs.NewValueIsRequiredError("reason codes")
	}
	for _, reason := range reasons {
		if reason == "" {
			return Inspection{}, errs.NewValueIsInvalidErrorWithCause(
				"reason codes", fmt.Errorf("empty reason code"))
		}
	}

	if at.IsZero() {
		return Inspection{}, errs.NewValueIsRequiredError("inspection timestamp")
	}

	return Inspection{
		outcome: outcome,
		reasons: append([]string(nil), reasons...),
		note:    note,
		at:      at,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Outcome returns the inspection decision.
func (i Inspection) Outcome() Outcome {
	return i.outcome
}

// Reasons returns a copy of the reason codes.
func (i Inspection) Reasons() []string {
	return append([]string(nil), i.reasons...)
}

// Note returns the free-text note, possibly empty.
func (i Inspection) Note() string {
	return i.note
}

// At returns the inspection timestamp.
func (i Inspection) At() time.Time {
	return i.at
}

// Validate ensures the Inspection was created through NewInspection.
func (i Inspection) Validate() error {
	return i.guard.Validate(ErrInspectionIsNotConstructed)
}
