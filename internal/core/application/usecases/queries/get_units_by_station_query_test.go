package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnitsByStationQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetUnitsByStationQuery("BH11")
	require.NoError(t, err)
	assert.Equal(t, "BH11", query.Station())
	require.NoError(t, query.Validate())
}

func TestNewGetUnitsByStationQuery_EmptyStation(t *testing.T) {
	_, err := queries.NewGetUnitsByStationQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetUnitsByStationQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetUnitsByStationQuery
	require.Error(t, query.Validate())
}
