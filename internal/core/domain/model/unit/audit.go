package unit

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// AuditEntry records who moved a unit, when, and between which steps.
// One entry is appended for every successful creation or transition and
// persisted in the same transaction as the unit write, so the trail never
// diverges from the unit's actual history.
type AuditEntry struct {
	ID        kernel.UUID
	LotNumber string
	Actor     string
	FromStep  Step
	ToStep    Step
	At        time.Time
}

func newAuditEntry(lotNumber, actor string, from, to Step, at time.Time) AuditEntry {
	return AuditEntry{
		ID:        kernel.NewUUID(),
		LotNumber: lotNumber,
		Actor:     actor,
		FromStep:  from,
		ToStep:    to,
		At:        at,
	}
}
