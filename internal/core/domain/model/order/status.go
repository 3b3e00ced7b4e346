package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct planning workflow.
//
// State transitions:
//
//	Planned ──> InProgress ──> Completed
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status of an imported or entered order.
	// No units have been produced against it yet.
	Planned

	// InProgress indicates that at least one unit has been created for
	// the order. Set automatically on first unit creation.
	InProgress

	// Completed indicates the order was closed by external action.
	// Final state.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	// Final state. Units already produced keep referencing the order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined valid statuses.
// Used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Planned -> InProgress (first unit created)
//   - InProgress -> InProgress (subsequent unit creation, no-op)
//
// Returns an error for final or invalid statuses.
func (s Status) Start() (Status, error) {
	if s != Planned && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to start production", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Completing a Planned order is rejected: an order without any produced
// units cannot be fulfilled.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Planned -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsFinal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
