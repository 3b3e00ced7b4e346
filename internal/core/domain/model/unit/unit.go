package unit

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// UnassignedOrder is the sentinel owning-order reference for units produced
// beyond an order's planned quantity. Overproduced units are detached from
// the original order and carry this value instead.
const UnassignedOrder = "UNASSIGNED"

// ErrUnitIsNotConstructed is returned when a Unit instance was not created
// through NewUnit or RestoreUnit.
var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or RestoreUnit")

// Unit represents one physical manufactured item. It is the aggregate root
// of the unit registry: the authoritative record of identity, location in
// the workflow, inspection history, and exception flags.
//
// Unit follows these invariants:
//   - The lot number is immutable once minted
//   - Current step and current station move together; every step change
//     goes through Transition, which enforces the legal-transition table
//   - Finished and REJECTED are terminal; past those states only
//     measurement appends are accepted
//   - A unit held in HOLD_AREA re-enters the flow only at the step it was
//     held from
//
// Units reference their order weakly by identifier: they outlive the
// order's lifecycle in the registry.
type Unit struct {
	lotNumber       kernel.LotNumber
	orderID         string
	itemDescription string
	itemClass       kernel.ItemClass
	originStation   string
	currentStation  string
	currentStep     Step
	lifecycle       LifecycleStatus
	measurements    map[string]string
	inspections     []Inspection
	heldFromStep    Step
	overproduction  bool
	reminderSent    bool
	createdAt       time.Time
	updatedAt       time.Time

	pendingAudit []AuditEntry
	guard        guard.ConstructorGuard
}

// NewUnit creates a unit at production start: step Wikkelen, stationed at
// its originating winding station, lifecycle in progress. The item class is
// resolved once here from the description and consumed by the router
// thereafter.
//
// An audit entry recording the creation (actor, timestamp) is queued on the
// aggregate and persisted together with the unit.
func NewUnit(
	lotNumber kernel.LotNumber,
	orderID string,
	itemDescription string,
	originStation string,
	actor string,
	createdAt time.Time,
) (*Unit, error) {
	if err := lotNumber.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := kernel.ValidateStationName(originStation); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	u := &Unit{
		lotNumber:       lotNumber,
		orderID:         orderID,
		itemDescription: itemDescription,
		itemClass:       kernel.ClassifyItem(itemDescription),
		originStation:   originStation,
		currentStation:  originStation,
		currentStep:     Wikkelen,
		lifecycle:       LifecycleInProgress,
		measurements:    make(map[string]string),
		createdAt:       createdAt,
		updatedAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}
	u.pendingAudit = append(u.pendingAudit,
		newAuditEntry(lotNumber.String(), actor, StepUnknown, Wikkelen, createdAt))

	return u, nil
}

// RestoreUnit reconstructs a unit from persistence. Used only by repository
// adapters; no audit entry is queued.
func RestoreUnit(
	lotNumber kernel.LotNumber,
	orderID string,
	itemDescription string,
	itemClass kernel.ItemClass,
	originStation string,
	currentStation string,
	currentStep Step,
	lifecycle LifecycleStatus,
	measurements map[string]string,
	inspections []Inspection,
	heldFromStep Step,
	overproduction bool,
	reminderSent bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Unit, error) {
	if err := errors.Join(
		lotNumber.Validate(),
		currentStep.Validate(),
		lifecycle.Validate(),
	); err != nil {
		return nil, err
	}
	if itemClass != kernel.ItemClassUnknown {
		if err := itemClass.Validate(); err != nil {
			return nil, err
		}
	} else {
		itemClass = kernel.ClassifyItem(itemDescription)
	}

	if measurements == nil {
		measurements = make(map[string]string)
	}

	return &Unit{
		lotNumber:       lotNumber,
		orderID:         orderID,
		itemDescription: itemDescription,
		itemClass:       itemClass,
		originStation:   originStation,
		currentStation:  currentStation,
		currentStep:     currentStep,
		lifecycle:       lifecycle,
		measurements:    measurements,
		inspections:     append([]Inspection(nil), inspections...),
		heldFromStep:    heldFromStep,
		overproduction:  overproduction,
		reminderSent:    reminderSent,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Unit instance was properly constructed.
func (u *Unit) Validate() error {
	if u == nil {
		return ErrUnitIsNotConstructed
	}
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

// IsEqual compares two units by their lot numbers.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.lotNumber.IsEqual(other.lotNumber)
}

// LotNumber returns the unit's immutable lot number.
func (u *Unit) LotNumber() kernel.LotNumber {
	return u.lotNumber
}

// OrderID returns the owning order identifier, or UnassignedOrder for
// overproduced units.
func (u *Unit) OrderID() string {
	return u.orderID
}

// ItemDescription returns the description of the manufactured item.
func (u *Unit) ItemDescription() string {
	return u.itemDescription
}

// ItemClass returns the routing classification resolved at creation.
func (u *Unit) ItemClass() kernel.ItemClass {
	return u.itemClass
}

// OriginStation returns the winding station the unit was created at.
func (u *Unit) OriginStation() string {
	return u.originStation
}

// CurrentStation returns the physical station the unit occupies.
func (u *Unit) CurrentStation() string {
	return u.currentStation
}

// CurrentStep returns the workflow step the unit is in.
func (u *Unit) CurrentStep() Step {
	return u.currentStep
}

// Lifecycle returns the unit's lifecycle status.
func (u *Unit) Lifecycle() LifecycleStatus {
	return u.lifecycle
}

// Measurements returns a copy of the measurement set.
func (u *Unit) Measurements() map[string]string {
	copied := make(map[string]string, len(u.measurements))
	for k, v := range u.measurements {
		copied[k] = v
	}
	return copied
}

// Inspections returns a copy of the full inspection history.
func (u *Unit) Inspections() []Inspection {
	return append([]Inspection(nil), u.inspections...)
}

// LatestInspection returns the most recent inspection record, which is the
// authoritative one for routing, or nil if none exists.
func (u *Unit) LatestInspection() *Inspection {
	if len(u.inspections) == 0 {
		return nil
	}
	latest := u.inspections[len(u.inspections)-1]
	return &latest
}

// HeldFromStep returns the step the unit was in when it entered HOLD_AREA,
// or StepUnknown when the unit is not held.
func (u *Unit) HeldFromStep() Step {
	return u.heldFromStep
}

// IsOverproduced reports whether the unit was produced beyond its order's
// planned quantity.
func (u *Unit) IsOverproduced() bool {
	return u.overproduction
}

// IsReminderSent reports whether the one-time stale-hold reminder has been
// emitted for this unit.
func (u *Unit) IsReminderSent() bool {
	return u.reminderSent
}

// CreatedAt returns the creation timestamp.
func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (u *Unit) UpdatedAt() time.Time {
	return u.updatedAt
}

// MarkOverproduced flags the unit as overproduction and detaches it from
// its original order. Production is never blocked: the physical unit
// already exists, so the guard's job is bookkeeping, not prevention.
func (u *Unit) MarkOverproduced() {
	u.overproduction = true
	u.orderID = UnassignedOrder
}

// Transition moves the unit to the given step and station. This is the only
// path that mutates step and station, and it enforces:
//   - terminal steps are never left (idempotence of terminality)
//   - the target step is reachable per the legal-transition table
//   - HOLD_AREA is only left toward the step the unit was held from
//
// On success the station, step, and updated timestamp change together, an
// audit entry is queued, and terminal steps settle the lifecycle status.
// On failure the unit is left unchanged and an InvalidTransitionError
// (errs.ErrInvalidTransition) is returned.
func (u *Unit) Transition(to Step, station string, actor string, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := kernel.ValidateStationName(station); err != nil {
		return err
	}

	lot := u.lotNumber.String()
	if u.currentStep.IsTerminal() {
		return errs.NewInvalidTransitionError(lot, u.currentStep.String(), to.String())
	}
	if !u.currentStep.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError(lot, u.currentStep.String(), to.String())
	}
	if u.currentStep == HoldArea && to != u.heldFromStep {
		return errs.NewInvalidTransitionErrorWithCause(lot, u.currentStep.String(), to.String(),
			errors.New("held units re-enter the flow at the step they were held from"))
	}

	from := u.currentStep
	if to == HoldArea {
		u.heldFromStep = from
	} else {
		u.heldFromStep = StepUnknown
	}

	u.currentStep = to
	u.currentStation = station
	u.updatedAt = at

	switch to {
	case Finished:
		u.lifecycle = LifecycleCompleted
	case Rejected:
		u.lifecycle = LifecycleRejected
	}

	u.pendingAudit = append(u.pendingAudit, newAuditEntry(lot, actor, from, to, at))
	return nil
}

// AddInspection appends an inspection record to the unit's history.
// Routing is the caller's concern; this method only records the event.
func (u *Unit) AddInspection(inspection Inspection) error {
	if err := inspection.Validate(); err != nil {
		return err
	}
	u.inspections = append(u.inspections, inspection)
	u.updatedAt = inspection.At()
	return nil
}

// RecordMeasurements merges measurement values into the unit's measurement
// set. Appends are allowed even past terminal states: late annotations are
// not a routing concern.
func (u *Unit) RecordMeasurements(measurements map[string]string, at time.Time) {
	for k, v := range measurements {
		u.measurements[k] = v
	}
	if len(measurements) > 0 {
		u.updatedAt = at
	}
}

// MarkReminderSent sets the one-time reminder flag. Returns false when the
// flag was already set, which makes repeated sweeps idempotent.
func (u *Unit) MarkReminderSent(at time.Time) bool {
	if u.reminderSent {
		return false
	}
	u.reminderSent = true
	u.updatedAt = at
	return true
}

// PendingAuditEntries returns the audit entries queued since the unit was
// loaded or created. Repositories persist them in the same transaction as
// the unit write.
func (u *Unit) PendingAuditEntries() []AuditEntry {
	return append([]AuditEntry(nil), u.pendingAudit...)
}

// ClearPendingAuditEntries empties the queued audit entries after they have
// been persisted.
func (u *Unit) ClearPendingAuditEntries() {
	u.pendingAudit = nil
}
