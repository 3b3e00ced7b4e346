package ports

import (
	"context"

	"tracking/internal/core/domain/model/unit"
)

// UnitRepository defines the persistence contract for the unit registry:
// an append-mostly store keyed by lot number. Every successful Add or
// Update also persists the aggregate's pending audit entries in the same
// transaction.
type UnitRepository interface {
	// Add persists a new unit. Fails with errs.ValueIsInvalidError when
	// the lot number already exists, guarding against double-submission.
	Add(ctx context.Context, aggregate *unit.Unit) error

	// Update persists changes to an existing unit without a step
	// precondition. Used for non-routing mutations such as measurement
	// appends.
	Update(ctx context.Context, aggregate *unit.Unit) error

	// UpdateInStep persists changes conditioned on the unit still being
	// in expectedStep in storage. Fails with errs.ConcurrencyConflictError
	// when another writer transitioned the unit concurrently, and with
	// errs.ObjectNotFoundError when the lot number is unknown.
	UpdateInStep(ctx context.Context, aggregate *unit.Unit, expectedStep unit.Step) error

	// MarkReminderSent persists the unit conditioned on its reminder flag
	// still being unset in storage, so concurrent sweeps claim each unit at
	// most once. Returns false without error when another sweep already
	// claimed it, and errs.ObjectNotFoundError when the lot number is
	// unknown.
	MarkReminderSent(ctx context.Context, aggregate *unit.Unit) (bool, error)

	// Get retrieves a unit by its encoded lot number.
	// Returns errs.ObjectNotFoundError when the lot number is unknown.
	Get(ctx context.Context, lotNumber string) (*unit.Unit, error)

	// GetByStation retrieves all units currently at the given station.
	GetByStation(ctx context.Context, station string) ([]*unit.Unit, error)

	// GetByOrder retrieves all units referencing the given order.
	GetByOrder(ctx context.Context, orderID string) ([]*unit.Unit, error)

	// CountByOrder counts the units referencing the given order. Feeds
	// the overproduction guard and the order tracker.
	CountByOrder(ctx context.Context, orderID string) (int, error)

	// MaxSequence returns the highest lot sequence already minted for the
	// given normalized station code, year, and week, or 0 when none
	// exists. Used to auto-compute the starting sequence of a batch.
	MaxSequence(ctx context.Context, stationCode string, year, week int) (int, error)

	// GetHeld retrieves all units currently parked in HOLD_AREA.
	// The stale-hold sweep scans these.
	GetHeld(ctx context.Context) ([]*unit.Unit, error)
}
