package unit

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// LifecycleStatus summarizes whether a unit is still moving through the
// workflow or has reached one of its terminal fates. It is derived from the
// step on terminal transitions and kept on the unit for cheap filtering.
type LifecycleStatus int

const (
	// LifecycleUnknown represents an invalid or undefined status.
	LifecycleUnknown LifecycleStatus = iota

	// LifecycleInProgress covers every non-terminal step, HOLD_AREA
	// included.
	LifecycleInProgress

	// LifecycleCompleted is set when the unit reaches Finished.
	LifecycleCompleted

	// LifecycleRejected is set when the unit reaches REJECTED.
	LifecycleRejected
)

func getLifecycleStrings() map[LifecycleStatus]string {
	return map[LifecycleStatus]string{
		LifecycleUnknown:    "unknown",
		LifecycleInProgress: "in_progress",
		LifecycleCompleted:  "completed",
		LifecycleRejected:   "rejected",
	}
}

func getValidLifecycleStrings() map[LifecycleStatus]string {
	//nolint:exhaustive // LifecycleUnknown is intentionally excluded as it's invalid
	return map[LifecycleStatus]string{
		LifecycleInProgress: "in_progress",
		LifecycleCompleted:  "completed",
		LifecycleRejected:   "rejected",
	}
}

// Validate checks if the LifecycleStatus is one of the defined valid values.
func (s LifecycleStatus) Validate() error {
	if _, ok := getValidLifecycleStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"lifecycle status", fmt.Errorf("%d is not a valid lifecycle status", s))
	}
	return nil
}

// String returns the wire name of the lifecycle status.
// Implements fmt.Stringer and is safe on invalid values.
func (s LifecycleStatus) String() string {
	if str, ok := getLifecycleStrings()[s]; ok {
		return str
	}
	return "unknown"
}
