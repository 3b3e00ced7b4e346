package unit_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLotNumber(t *testing.T, sequence int) kernel.LotNumber {
	t.Helper()
	lot, err := kernel.NewLotNumber(26, 35, "BH11", sequence)
	require.NoError(t, err)
	return lot
}

func newTestUnit(t *testing.T) *unit.Unit {
	t.Helper()
	u, err := unit.NewUnit(
		mustLotNumber(t, 1), "ORD-100", "Buis DN150 PN10", "BH11",
		"operator-1", time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return u
}

func TestNewUnit(t *testing.T) {
	t.Run("starts_at_wikkelen_on_origin_station", func(t *testing.T) {
		u := newTestUnit(t)

		assert.Equal(t, unit.Wikkelen, u.CurrentStep())
		assert.Equal(t, "BH11", u.CurrentStation())
		assert.Equal(t, unit.LifecycleInProgress, u.Lifecycle())
		assert.Equal(t, kernel.ItemClassStandard, u.ItemClass())
		assert.False(t, u.IsOverproduced())
		assert.False(t, u.IsReminderSent())
	})

	t.Run("queues_creation_audit_entry", func(t *testing.T) {
		u := newTestUnit(t)

		entries := u.PendingAuditEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, "operator-1", entries[0].Actor)
		assert.Equal(t, unit.StepUnknown, entries[0].FromStep)
		assert.Equal(t, unit.Wikkelen, entries[0].ToStep)
	})

	t.Run("resolves_flanged_class_from_description", func(t *testing.T) {
		u, err := unit.NewUnit(
			mustLotNumber(t, 2), "ORD-100", "Bocht met flens DN200", "BH11",
			"operator-1", time.Now().UTC(),
		)
		require.NoError(t, err)
		assert.Equal(t, kernel.ItemClassFlanged, u.ItemClass())
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		_, err := unit.NewUnit(kernel.LotNumber{}, "ORD-100", "item", "BH11", "op", time.Now())
		require.Error(t, err)

		_, err = unit.NewUnit(mustLotNumber(t, 3), "", "item", "BH11", "op", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = unit.NewUnit(mustLotNumber(t, 3), "ORD-100", "item", "", "op", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUnit_Transition(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	t.Run("legal_chain_to_finished", func(t *testing.T) {
		u := newTestUnit(t)

		require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
		require.NoError(t, u.Transition(unit.Nabewerking, "NB01", "op", now))
		require.NoError(t, u.Transition(unit.Eindinspectie, "BM01", "op", now))
		require.NoError(t, u.Transition(unit.Finished, "BM01", "op", now))

		assert.Equal(t, unit.Finished, u.CurrentStep())
		assert.Equal(t, unit.LifecycleCompleted, u.Lifecycle())
	})

	t.Run("illegal_transition_leaves_unit_unchanged", func(t *testing.T) {
		u := newTestUnit(t)

		err := u.Transition(unit.Finished, "BM01", "op", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, unit.Wikkelen, u.CurrentStep())
		assert.Equal(t, "BH11", u.CurrentStation())
	})

	t.Run("terminal_units_cannot_transition_again", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
		require.NoError(t, u.Transition(unit.Rejected, "AFKEUR", "op", now))
		assert.Equal(t, unit.LifecycleRejected, u.Lifecycle())

		err := u.Transition(unit.Lossen, "BH11", "op", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, unit.Rejected, u.CurrentStep())
	})

	t.Run("hold_remembers_and_enforces_reentry_step", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
		require.NoError(t, u.Transition(unit.HoldArea, "BH11", "op", now))

		assert.Equal(t, unit.Lossen, u.HeldFromStep())
		assert.Equal(t, "BH11", u.CurrentStation(), "held unit stays visible at its station")

		err := u.Transition(unit.Eindinspectie, "BM01", "op", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
		assert.Equal(t, unit.StepUnknown, u.HeldFromStep())
	})

	t.Run("every_transition_appends_audit_entry", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
		require.NoError(t, u.Transition(unit.Nabewerking, "NB01", "op-2", now))

		entries := u.PendingAuditEntries()
		require.Len(t, entries, 3)
		assert.Equal(t, unit.Wikkelen, entries[1].FromStep)
		assert.Equal(t, unit.Lossen, entries[1].ToStep)
		assert.Equal(t, unit.Lossen, entries[2].FromStep)
		assert.Equal(t, unit.Nabewerking, entries[2].ToStep)
		assert.Equal(t, "op-2", entries[2].Actor)

		for _, e := range entries[1:] {
			assert.True(t, e.FromStep.CanTransitionTo(e.ToStep),
				"audit trail records illegal transition %s -> %s", e.FromStep, e.ToStep)
		}
	})
}

func TestUnit_MarkOverproduced(t *testing.T) {
	u := newTestUnit(t)
	u.MarkOverproduced()

	assert.True(t, u.IsOverproduced())
	assert.Equal(t, unit.UnassignedOrder, u.OrderID())
}

func TestUnit_MarkReminderSent(t *testing.T) {
	u := newTestUnit(t)
	now := time.Now().UTC()

	assert.True(t, u.MarkReminderSent(now))
	assert.False(t, u.MarkReminderSent(now), "second call must be a no-op")
	assert.True(t, u.IsReminderSent())
}

func TestUnit_RecordMeasurements(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	u := newTestUnit(t)

	u.RecordMeasurements(map[string]string{"wanddikte": "4.5"}, now)
	assert.Equal(t, "4.5", u.Measurements()["wanddikte"])

	// Appends stay legal after a terminal transition.
	require.NoError(t, u.Transition(unit.Lossen, "BH11", "op", now))
	require.NoError(t, u.Transition(unit.Rejected, "AFKEUR", "op", now))
	u.RecordMeasurements(map[string]string{"lengte": "1200"}, now)
	assert.Equal(t, "1200", u.Measurements()["lengte"])
}

func TestNewInspection(t *testing.T) {
	now := time.Now().UTC()

	t.Run("approved_needs_no_reasons", func(t *testing.T) {
		insp, err := unit.NewInspection(unit.OutcomeApproved, nil, "", now)
		require.NoError(t, err)
		assert.Equal(t, unit.OutcomeApproved, insp.Outcome())
	})

	t.Run("non_approved_requires_reasons", func(t *testing.T) {
		_, err := unit.NewInspection(unit.OutcomeTemporaryReject, nil, "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = unit.NewInspection(unit.OutcomeRejected, []string{}, "scrap", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_reason_code", func(t *testing.T) {
		_, err := unit.NewInspection(unit.OutcomeTemporaryReject, []string{""}, "", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reasons_are_copied", func(t *testing.T) {
		reasons := []string{"Beschadiging"}
		insp, err := unit.NewInspection(unit.OutcomeTemporaryReject, reasons, "", now)
		require.NoError(t, err)

		reasons[0] = "mutated"
		assert.Equal(t, []string{"Beschadiging"}, insp.Reasons())
	})
}

func TestUnit_LatestInspection(t *testing.T) {
	now := time.Now().UTC()
	u := newTestUnit(t)

	assert.Nil(t, u.LatestInspection())

	first, err := unit.NewInspection(unit.OutcomeTemporaryReject, []string{"Beschadiging"}, "", now)
	require.NoError(t, err)
	require.NoError(t, u.AddInspection(first))

	second, err := unit.NewInspection(unit.OutcomeApproved, nil, "reworked", now.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, u.AddInspection(second))

	latest := u.LatestInspection()
	require.NotNil(t, latest)
	assert.Equal(t, unit.OutcomeApproved, latest.Outcome())
	assert.Len(t, u.Inspections(), 2)
}
