// Package order provides domain entities and business logic for planned
// production orders. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root carrying the planned run (item, quantity,
//     origin workstation, ISO week)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a unique identifier and a positive planned quantity
//   - The planned quantity is fixed once set; live "remaining" is computed
//     by the order tracker, never stored
//   - Order status follows a defined workflow:
//     Planned -> InProgress -> Completed, with Cancelled reachable from
//     any non-final status
//   - Orders are never deleted by the tracking core
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
