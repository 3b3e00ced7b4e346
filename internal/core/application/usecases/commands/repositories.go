// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and post-commit notification.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UnitRepoFactory provides access to the unit repository within a
	// transaction.
	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	// UnitUoW manages transactions for unit-only operations.
	// Used by commands that only move or annotate existing units.
	UnitUoW interface {
		TxManager
		UnitRepoFactory
	}

	// UnitUoWFactory creates new unit unit-of-work instances.
	UnitUoWFactory interface {
		Create() UnitUoW
	}

	// UoW manages transactions across both order and unit aggregates.
	// Used by commands that coordinate changes between the two, such as
	// production start.
	UoW interface {
		TxManager
		OrderRepoFactory
		UnitRepoFactory
	}

	// UoWFactory creates new unit-of-work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
