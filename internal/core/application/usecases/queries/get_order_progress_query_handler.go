package queries

import (
	"context"
	"database/sql"
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderProgressQueryHandler derives live order progress by scanning the
// order's units and folding counts in memory. Nothing is aggregated in the
// store: the projection is recomputed on every read.
type GetOrderProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderProgressQueryHandler creates a handler for order progress
// queries. Requires a GORM database connection for query execution.
func NewGetOrderProgressQueryHandler(db *gorm.DB) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{db: db}
}

// Handle executes the progress query. Returns errs.ObjectNotFoundError
// when the order identifier is unknown.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	var resp GetOrderProgressQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_description,
			planned_quantity,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(&resp.OrderID, &resp.ItemDescription, &resp.PlannedQuantity, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderProgressQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID())
	}
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT current_step
		FROM units
		WHERE order_id = ?
		ORDER BY lot_number
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var step int
		if err = rows.Scan(&step); err != nil {
			return GetOrderProgressQueryResponse{}, err
		}

		resp.Started++
		switch unit.Step(step) {
		case unit.Finished:
			resp.Finished++
		case unit.Rejected:
			resp.Rejected++
		case unit.HoldArea:
			resp.Held++
		}
	}
	if err = rows.Err(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	resp.Remaining = resp.PlannedQuantity - resp.Started
	if resp.Remaining < 0 {
		resp.Remaining = 0
	}

	return resp, nil
}
