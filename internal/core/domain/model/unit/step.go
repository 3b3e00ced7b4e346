package unit

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Step represents the logical workflow stage a unit is in. It is distinct
// from the physical station, though the two move together under router
// rules.
//
// Legal transitions:
//
//	Wikkelen ──> Lossen ──> Nabewerking ──> Eindinspectie ──> Finished
//	               │             │               │
//	               ├─────────────┼───────────────┤
//	               v             v               v
//	           HOLD_AREA     (re-entry at the step held from)
//	               │
//	               └──> back into the flow
//
//	Lossen, Nabewerking, Eindinspectie can also fail into REJECTED.
//	Finished and REJECTED are terminal.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// Wikkelen (winding): the unit was just created at a winding station.
	Wikkelen

	// Lossen (unload/inspect): awaiting the unload inspection.
	Lossen

	// Nabewerking (post-processing): at a secondary machining or
	// finishing station. Flanged variants perform this step at the Mazak
	// station.
	Nabewerking

	// Eindinspectie (final inspection): the final QC gate at BM01.
	Eindinspectie

	// HoldArea: temporarily parked pending rework after a temporary
	// reject. The unit stays visible at its current station.
	HoldArea

	// Finished: terminal success.
	Finished

	// Rejected: terminal failure. The unit is moved to the rejection
	// holding area.
	Rejected
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:   "Unknown",
		Wikkelen:      "Wikkelen",
		Lossen:        "Lossen",
		Nabewerking:   "Nabewerking",
		Eindinspectie: "Eindinspectie",
		HoldArea:      "HOLD_AREA",
		Finished:      "Finished",
		Rejected:      "REJECTED",
	}
}

func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[Step]string{
		Wikkelen:      "Wikkelen",
		Lossen:        "Lossen",
		Nabewerking:   "Nabewerking",
		Eindinspectie: "Eindinspectie",
		HoldArea:      "HOLD_AREA",
		Finished:      "Finished",
		Rejected:      "REJECTED",
	}
}

// getLegalTransitions returns the legal-transition table. The router never
// lets a unit move to a step absent from its current step's entry.
func getLegalTransitions() map[Step][]Step {
	return map[Step][]Step{
		Wikkelen:      {Lossen},
		Lossen:        {Nabewerking, HoldArea, Rejected},
		Nabewerking:   {Eindinspectie, HoldArea, Rejected},
		Eindinspectie: {Finished, HoldArea, Rejected},
		HoldArea:      {Lossen, Nabewerking, Eindinspectie},
		Finished:      {},
		Rejected:      {},
	}
}

// Validate checks if the Step value is one of the defined valid steps.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step.
// Implements fmt.Stringer and is safe on invalid values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the step permits no further transitions.
func (s Step) IsTerminal() bool {
	return s == Finished || s == Rejected
}

// CanTransitionTo reports whether moving to next is present in the
// legal-transition table for this step. Re-entry restrictions out of
// HOLD_AREA (only back to the step held from) are enforced by the Unit
// aggregate, which knows where the unit was held.
func (s Step) CanTransitionTo(next Step) bool {
	for _, legal := range getLegalTransitions()[s] {
		if legal == next {
			return true
		}
	}
	return false
}
