// Package unitrepo provides data transfer objects and mapping functions
// for unit persistence. It implements the repository pattern for the unit
// aggregate, including the audit trail rows written alongside every unit
// mutation.
package unitrepo

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
)

// UnitDTO represents the database structure for persisting unit
// aggregates. The encoded lot number is the primary key. The lot number's
// parts (station code, year, week, sequence) are stored as separate
// indexed columns so sequence allocation can query them directly.
type UnitDTO struct {
	LotNumber       string `gorm:"primaryKey"`
	OrderID         string `gorm:"index"`
	ItemDescription string
	ItemClass       int
	OriginStation   string
	CurrentStation  string `gorm:"index"`
	CurrentStep     int    `gorm:"index"`
	Lifecycle       int
	Measurements    string
	Inspections     string
	HeldFromStep    int
	Overproduced    bool
	ReminderSent    bool
	StationCode     string `gorm:"index:idx_units_sequence"`
	Year            int    `gorm:"index:idx_units_sequence"`
	Week            int    `gorm:"index:idx_units_sequence"`
	Sequence        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for unit entities.
func (UnitDTO) TableName() string {
	return "units"
}

// AuditEntryDTO represents one audit trail row: who moved a unit, when,
// and between which steps.
type AuditEntryDTO struct {
	ID        string `gorm:"primaryKey"`
	LotNumber string `gorm:"index"`
	Actor     string
	FromStep  int
	ToStep    int
	At        time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "unit_audit_entries"
}

// inspectionDTO is the JSON shape of one inspection record inside the
// unit's inspections column.
type inspectionDTO struct {
	Outcome int       `json:"outcome"`
	Reasons []string  `json:"reasons"`
	Note    string    `json:"note,omitempty"`
	At      time.Time `json:"at"`
}

// fromDomain converts a unit domain aggregate to its database
// representation.
func fromDomain(aggregate *unit.Unit) (UnitDTO, error) {
	measurements, err := json.Marshal(aggregate.Measurements())
	if err != nil {
		return UnitDTO{}, err
	}

	inspections := make([]inspectionDTO, 0)
	for _, i := range aggregate.Inspections() {
		inspections = append(inspections, inspectionDTO{
			Outcome: int(i.Outcome()),
			Reasons: i.Reasons(),
			Note:    i.Note(),
			At:      i.At(),
		})
	}
	inspectionsJSON, err := json.Marshal(inspections)
	if err != nil {
		return UnitDTO{}, err
	}

	lot := aggregate.LotNumber()
	return UnitDTO{
		LotNumber:       lot.String(),
		OrderID:         aggregate.OrderID(),
		ItemDescription: aggregate.ItemDescription(),
		ItemClass:       int(aggregate.ItemClass()),
		OriginStation:   aggregate.OriginStation(),
		CurrentStation:  aggregate.CurrentStation(),
		CurrentStep:     int(aggregate.CurrentStep()),
		Lifecycle:       int(aggregate.Lifecycle()),
		Measurements:    string(measurements),
		Inspections:     string(inspectionsJSON),
		HeldFromStep:    int(aggregate.HeldFromStep()),
		Overproduced:    aggregate.IsOverproduced(),
		ReminderSent:    aggregate.IsReminderSent(),
		StationCode:     lot.StationCode(),
		Year:            lot.Year(),
		Week:            lot.Week(),
		Sequence:        lot.Sequence(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// auditFromDomain converts the aggregate's pending audit entries to rows.
func auditFromDomain(entries []unit.AuditEntry) []AuditEntryDTO {
	dtos := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, AuditEntryDTO{
			ID:        e.ID.String(),
			LotNumber: e.LotNumber,
			Actor:     e.Actor,
			FromStep:  int(e.FromStep),
			ToStep:    int(e.ToStep),
			At:        e.At,
		})
	}
	return dtos
}

// toDomain reconstructs the unit aggregate from a database row using
// RestoreUnit.
func toDomain(dto UnitDTO) (*unit.Unit, error) {
	lot, err := kernel.ParseLotNumber(dto.LotNumber)
	if err != nil {
		return nil, err
	}

	var measurements map[string]string
	if dto.Measurements != "" {
		if err = json.Unmarshal([]byte(dto.Measurements), &measurements); err != nil {
			return nil, err
		}
	}

	var inspectionDTOs []inspectionDTO
	if dto.Inspections != "" {
		if err = json.Unmarshal([]byte(dto.Inspections), &inspectionDTOs); err != nil {
			return nil, err
		}
	}
	inspections := make([]unit.Inspection, 0, len(inspectionDTOs))
	for _, i := range inspectionDTOs {
		inspection, inspErr := unit.NewInspection(
			unit.Outcome(i.Outcome), i.Reasons, i.Note, i.At)
		if inspErr != nil {
			return nil, inspErr
		}
		inspections = append(inspections, inspection)
	}

	return unit.RestoreUnit(
		lot,
		dto.OrderID,
		dto.ItemDescription,
		kernel.ItemClass(dto.ItemClass),
		dto.OriginStation,
		dto.CurrentStation,
		unit.Step(dto.CurrentStep),
		unit.LifecycleStatus(dto.Lifecycle),
		measurements,
		inspections,
		unit.Step(dto.HeldFromStep),
		dto.Overproduced,
		dto.ReminderSent,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
