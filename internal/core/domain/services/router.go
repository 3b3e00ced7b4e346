package services

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"
)

// Fixed downstream stations of the workflow. Winding stations vary per
// order (they come in from planning as free text), but post-processing,
// final inspection, and the rejection holding area are fixed locations on
// the factory floor.
const (
	// StationNabewerking is the regular post-processing station for
	// standard items.
	StationNabewerking = "NABEWERKING"

	// StationMazak is the machining station flanged variants route to for
	// post-processing.
	StationMazak = "MAZAK"

	// StationFinalInspection is the final QC gate.
	StationFinalInspection = "BM01"

	// StationRejected is the holding area rejected units are moved to.
	StationRejected = "AFKEUR"
)

// StationRouter is the domain service that decides where a unit goes next
// and applies the transition. It is the only legitimate mutator of a unit's
// step and station.
//
// Key responsibilities:
//   - Advancing approved units to the next station appropriate to their
//     item class (flanged variants post-process at Mazak, standard items
//     at the regular post-processing station; both converge on BM01)
//   - Parking temporarily rejected units in HOLD_AREA without moving them
//     off their physical station
//   - Moving rejected units to the rejection holding area, terminally
//   - Releasing held units back into the flow at the step they were held
//     from
//
// All legality checks happen before any mutation: an illegal request fails
// with errs.ErrInvalidTransition and leaves the unit unchanged.
type StationRouter struct{}

// NewStationRouter creates a new StationRouter instance.
func NewStationRouter() StationRouter {
	return StationRouter{}
}

// Advance moves a unit one step forward along the approve path:
//
//	Wikkelen -> Lossen (same station, ready for unload)
//	Lossen -> Nabewerking (at Mazak for flanged items)
//	Nabewerking -> Eindinspectie (at BM01)
//	Eindinspectie -> Finished (terminal)
//
// The next station is derived from the unit's item class resolved at
// creation; the router never re-inspects the item description.
func (r StationRouter) Advance(u *unit.Unit, actor string, at time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}

	nextStep, nextStation, err := r.nextOnApprove(u)
	if err != nil {
		return err
	}

	return u.Transition(nextStep, nextStation, actor, at)
}

// Hold parks the unit in HOLD_AREA pending rework. The unit remains
// visible at its current physical station.
func (r StationRouter) Hold(u *unit.Unit, actor string, at time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.Transition(unit.HoldArea, u.CurrentStation(), actor, at)
}

// Reject terminally scraps the unit and moves it to the rejection holding
// area.
func (r StationRouter) Reject(u *unit.Unit, actor string, at time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.Transition(unit.Rejected, StationRejected, actor, at)
}

// ReleaseHold returns a held unit to the flow at the step it was held
// from, at its unchanged station.
func (r StationRouter) ReleaseHold(u *unit.Unit, actor string, at time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if u.CurrentStep() != unit.HoldArea {
		return errs.NewInvalidTransitionError(
			u.LotNumber().String(), u.CurrentStep().String(), u.HeldFromStep().String())
	}

	return u.Transition(u.HeldFromStep(), u.CurrentStation(), actor, at)
}

// RouteInspection applies an inspection outcome per the checkpoint
// contract: approved advances, temporary_reject holds, rejected scraps.
// Only checkpoint steps (Lossen, Nabewerking, Eindinspectie) accept
// inspection decisions; anything else fails before mutation.
func (r StationRouter) RouteInspection(u *unit.Unit, outcome unit.Outcome, actor string, at time.Time) error {
	switch u.CurrentStep() {
	case unit.Lossen, unit.Nabewerking, unit.Eindinspectie:
	default:
		return errs.NewInvalidTransitionErrorWithCause(
			u.LotNumber().String(), u.CurrentStep().String(), outcome.String(),
			errors.New("inspections are only accepted at checkpoint steps"))
	}

	switch outcome {
	case unit.OutcomeApproved:
		return r.Advance(u, actor, at)
	case unit.OutcomeTemporaryReject:
		return r.Hold(u, actor, at)
	case unit.OutcomeRejected:
		return r.Reject(u, actor, at)
	default:
		return outcome.Validate()
	}
}

// nextOnApprove resolves the (step, station) pair an approved unit advances
// to from its current step.
func (r StationRouter) nextOnApprove(u *unit.Unit) (unit.Step, string, error) {
	switch u.CurrentStep() {
	case unit.Wikkelen:
		return unit.Lossen, u.CurrentStation(), nil
	case unit.Lossen:
		if u.ItemClass() == kernel.ItemClassFlanged {
			return unit.Nabewerking, StationMazak, nil
		}
		return unit.Nabewerking, StationNabewerking, nil
	case unit.Nabewerking:
		return unit.Eindinspectie, StationFinalInspection, nil
	case unit.Eindinspectie:
		return unit.Finished, u.CurrentStation(), nil
	default:
		return unit.StepUnknown, "", errs.NewInvalidTransitionError(
			u.LotNumber().String(), u.CurrentStep().String(), "next")
	}
}
