package order

import (
	"errors"
	"fmt"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a planned production run. It is the aggregate root
// tracking what should be manufactured, where, and in which ISO week.
//
// Order follows these invariants:
//   - Must have a non-empty unique identifier
//   - Planned quantity must be positive and is fixed once set
//   - Live "remaining to produce" is always computed from the unit
//     registry, never stored on the order
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the external order identifier, e.g. "ORD-100"
	id string

	// itemDescription describes the manufactured item; its classification
	// drives routing of the order's units
	itemDescription string

	// plannedQuantity is the number of units planned. Immutable.
	plannedQuantity int

	// originStation is the winding workstation the run starts at
	originStation string

	// isoYear and isoWeek place the run in the production calendar and
	// feed lot number generation
	isoYear int
	isoWeek int

	// status represents the current state in the order lifecycle
	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Planned status with validation. This is
// the only way to create a fresh order, ensuring all invariants hold.
//
// Parameters:
//   - id: external order identifier (must be non-empty)
//   - itemDescription: description of the manufactured item
//   - plannedQuantity: number of units planned (must be positive)
//   - originStation: originating winding station (must be non-empty)
//   - isoYear, isoWeek: production calendar slot (week in [1, 53])
func NewOrder(
	id string,
	itemDescription string,
	plannedQuantity int,
	originStation string,
	isoYear, isoWeek int,
) (*Order, error) {
	o := &Order{
		status: Planned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItemDescription(itemDescription),
		o.setPlannedQuantity(plannedQuantity),
		o.setOriginStation(originStation),
		o.setWeek(isoYear, isoWeek),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit
// status. Used only by repository adapters.
func RestoreOrder(
	id string,
	itemDescription string,
	plannedQuantity int,
	originStation string,
	isoYear, isoWeek int,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, itemDescription, plannedQuantity, originStation, isoYear, isoWeek)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the external order identifier.
func (o *Order) ID() string {
	return o.id
}

// ItemDescription returns the description of the manufactured item.
func (o *Order) ItemDescription() string {
	return o.itemDescription
}

// ItemClass returns the routing classification of the order's item,
// resolved from the item description.
func (o *Order) ItemClass() kernel.ItemClass {
	return kernel.ClassifyItem(o.itemDescription)
}

// PlannedQuantity returns the fixed number of planned units.
func (o *Order) PlannedQuantity() int {
	return o.plannedQuantity
}

// OriginStation returns the originating winding station.
func (o *Order) OriginStation() string {
	return o.originStation
}

// ISOYear returns the production calendar year.
func (o *Order) ISOYear() int {
	return o.isoYear
}

// ISOWeek returns the production calendar week.
func (o *Order) ISOWeek() int {
	return o.isoWeek
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Start marks the order as in progress. Called when the first unit is
// created; calling it again while in progress is a harmless no-op.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete closes the order. Only external action calls this; the tracking
// core never completes orders on its own.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order before completion.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setItemDescription(itemDescription string) error {
	if strings.TrimSpace(itemDescription) == "" {
		return errs.NewValueIsRequiredError("item description")
	}
	o.itemDescription = itemDescription
	return nil
}

func (o *Order) setPlannedQuantity(plannedQuantity int) error {
	if plannedQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("planned quantity",
			fmt.Errorf("%d is not greater than 0", plannedQuantity))
	}
	o.plannedQuantity = plannedQuantity
	return nil
}

func (o *Order) setOriginStation(originStation string) error {
	if err := kernel.ValidateStationName(originStation); err != nil {
		return err
	}
	o.originStation = originStation
	return nil
}

func (o *Order) setWeek(isoYear, isoWeek int) error {
	if isoYear < 0 {
		return errs.NewValueIsInvalidErrorWithCause("iso year",
			fmt.Errorf("%d is negative", isoYear))
	}
	if isoWeek < 1 || isoWeek > 53 {
		return errs.NewValueIsOutOfRangeError("iso week", isoWeek, 1, 53)
	}
	o.isoYear = isoYear
	o.isoWeek = isoWeek
	return nil
}
