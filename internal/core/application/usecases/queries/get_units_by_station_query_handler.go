package queries

import (
	"context"

	"tracking/internal/core/domain/model/unit"

	"gorm.io/gorm"
)

// GetUnitsByStationQueryHandler retrieves the units physically present at
// one station, sorted by lot number for stable display order.
type GetUnitsByStationQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitsByStationQueryHandler creates a handler for station queries.
// Requires a GORM database connection for query execution.
func NewGetUnitsByStationQueryHandler(db *gorm.DB) GetUnitsByStationQueryHandler {
	return GetUnitsByStationQueryHandler{db: db}
}

// Handle executes the station query. An unknown station is not an error;
// it simply yields an empty result.
func (h GetUnitsByStationQueryHandler) Handle(
	ctx context.Context,
	query GetUnitsByStationQuery,
) ([]GetUnitsByStationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units := make([]GetUnitsByStationQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lot_number,
			order_id,
			current_step,
			lifecycle,
			overproduced,
			held_from_step
		FROM units
		WHERE current_station = ?
		ORDER BY lot_number
	`, query.Station()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnitsByStationQueryResponse
		var step, lifecycle, heldFrom int

		err = rows.Scan(
			&resp.LotNumber,
			&resp.OrderID,
			&step,
			&lifecycle,
			&resp.Overproduced,
			&heldFrom,
		)
		if err != nil {
			return nil, err
		}

		resp.CurrentStep = unit.Step(step).String()
		resp.Lifecycle = unit.LifecycleStatus(lifecycle).String()
		if heldFrom != int(unit.StepUnknown) {
			resp.HeldFromStep = unit.Step(heldFrom).String()
		}
		units = append(units, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
