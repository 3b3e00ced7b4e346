package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitInspectionCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSubmitInspectionCommand(
		"402635011400001",
		unit.OutcomeTemporaryReject,
		map[string]string{"wanddikte": "4.5"},
		[]string{"Beschadiging"},
		"surface damage",
		"inspector-3",
	)
	require.NoError(t, err)
	assert.Equal(t, "402635011400001", cmd.LotNumber())
	assert.Equal(t, unit.OutcomeTemporaryReject, cmd.Outcome())
	assert.Equal(t, map[string]string{"wanddikte": "4.5"}, cmd.Measurements())
	assert.Equal(t, []string{"Beschadiging"}, cmd.Reasons())
	assert.Equal(t, "surface damage", cmd.Note())
	assert.Equal(t, "inspector-3", cmd.Actor())
}

func TestNewSubmitInspectionCommand_ApprovedWithoutReasons(t *testing.T) {
	_, err := commands.NewSubmitInspectionCommand(
		"402635011400001", unit.OutcomeApproved,
		map[string]string{"wanddikte": "4.5"}, nil, "", "inspector-3")
	require.NoError(t, err)
}

func TestNewSubmitInspectionCommand_NonApprovedRequiresReasons(t *testing.T) {
	_, err := commands.NewSubmitInspectionCommand(
		"402635011400001", unit.OutcomeRejected,
		map[string]string{"wanddikte": "4.5"}, nil, "", "inspector-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSubmitInspectionCommand_NonNumericMeasurement(t *testing.T) {
	_, err := commands.NewSubmitInspectionCommand(
		"402635011400001", unit.OutcomeApproved,
		map[string]string{"wanddikte": "thick"}, nil, "", "inspector-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSubmitInspectionCommand_InvalidOutcome(t *testing.T) {
	_, err := commands.NewSubmitInspectionCommand(
		"402635011400001", unit.OutcomeUnknown,
		map[string]string{"wanddikte": "4.5"}, nil, "", "inspector-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
