package queries

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetUnitsByStationQueryIsNotConstructed = errors.New(
		"GetUnitsByStationQuery must be created via NewGetUnitsByStationQuery constructor",
	)
)

// GetUnitsByStationQuery retrieves all units currently at one physical
// station, the projection station displays render from.
type GetUnitsByStationQuery struct {
	station string

	guard guard.ConstructorGuard
}

// NewGetUnitsByStationQuery creates a query for the given station name.
func NewGetUnitsByStationQuery(station string) (GetUnitsByStationQuery, error) {
	if station == "" {
		return GetUnitsByStationQuery{}, errs.NewValueIsRequiredError("station")
	}
	return GetUnitsByStationQuery{
		station: station,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitsByStationQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitsByStationQueryIsNotConstructed)
}

// Station returns the queried station name.
func (q GetUnitsByStationQuery) Station() string {
	return q.station
}

// GetUnitsByStationQueryResponse summarizes one unit at the station.
type GetUnitsByStationQueryResponse struct {
	LotNumber    string
	OrderID      string
	CurrentStep  string
	Lifecycle    string
	Overproduced bool
	HeldFromStep string
}
