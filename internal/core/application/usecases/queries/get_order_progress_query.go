// Package queries contains read-only operations for retrieving system
// state. Implements the Query side of the CQRS architecture: handlers read
// the database directly and fold projections in memory, bypassing the
// domain aggregates.
package queries

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetOrderProgressQueryIsNotConstructed = errors.New(
		"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
	)
)

// GetOrderProgressQuery retrieves live production progress for one order.
//
// Example:
//
//	query, err := NewGetOrderProgressQuery("ORD-100")
//	if err != nil {
//	    return fmt.Errorf("invalid progress request: %w", err)
//	}
//
//	handler := NewGetOrderProgressQueryHandler(db)
//	progress, err := handler.Handle(ctx, query)
type GetOrderProgressQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for the given order identifier.
func NewGetOrderProgressQuery(orderID string) (GetOrderProgressQuery, error) {
	if orderID == "" {
		return GetOrderProgressQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderProgressQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the order whose progress is requested.
func (q GetOrderProgressQuery) OrderID() string {
	return q.orderID
}

// GetOrderProgressQueryResponse is the live progress projection of one
// order. Every count is derived from the unit registry at read time; none
// of them is stored, so the numbers cannot drift from the units themselves.
//
// Remaining is planned quantity minus started units, floored at zero.
// Overproduced units do not appear in any count: they are detached from
// the order at creation.
type GetOrderProgressQueryResponse struct {
	OrderID         string
	ItemDescription string
	Status          string
	PlannedQuantity int
	Started         int
	Finished        int
	Rejected        int
	Held            int
	Remaining       int
}
