package ports

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The tracking core never deletes orders; it only creates, reads, and
// updates their status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its external identifier.
	// Returns errs.ObjectNotFoundError when the identifier is unknown.
	Get(ctx context.Context, id string) (*order.Order, error)
}
