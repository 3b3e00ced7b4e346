package unitrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitRepository implements UnitRepository using GORM. Every
// successful write also persists the aggregate's pending audit entries in
// the same transaction and clears them from the aggregate.
type GormUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormUnitRepository {
	return &GormUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new unit. A lot number that already exists fails validation
// before the insert, guarding against double-submission.
func (r *GormUnitRepository) Add(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	lot := aggregate.LotNumber().String()
	var count int64
	if err := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("lot_number = ?", lot).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lot number", fmt.Errorf("%s already exists", lot))
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err = r.persistAudit(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(lot, aggregate)
	return nil
}

// Update saves an existing unit without a step precondition.
func (r *GormUnitRepository) Update(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("lot_number = ?", dto.LotNumber).
		Select("*").Omit("lot_number", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lot number", dto.LotNumber)
	}

	if err = r.persistAudit(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.LotNumber, aggregate)
	return nil
}

// UpdateInStep saves an existing unit conditioned on it still being in
// expectedStep in storage. A concurrent transition makes the conditional
// write hit zero rows; the follow-up read distinguishes a lost race from
// an unknown lot number.
func (r *GormUnitRepository) UpdateInStep(
	ctx context.Context,
	aggregate *unit.Unit,
	expectedStep unit.Step,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("lot_number = ? AND current_step = ?", dto.LotNumber, int(expectedStep)).
		Select("*").Omit("lot_number", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&UnitDTO{}).
			Where("lot_number = ?", dto.LotNumber).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("lot number", dto.LotNumber)
		}
		return errs.NewConcurrencyConflictError(dto.LotNumber, expectedStep.String())
	}

	if err = r.persistAudit(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.LotNumber, aggregate)
	return nil
}

// MarkReminderSent saves an existing unit conditioned on its reminder flag
// still being unset in storage. Two sweeps racing on the same unit both
// pass the in-memory check, but only the first conditional write hits a
// row; the loser gets false and must not notify.
func (r *GormUnitRepository) MarkReminderSent(ctx context.Context, aggregate *unit.Unit) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("lot_number = ? AND reminder_sent = ?", dto.LotNumber, false).
		Select("*").Omit("lot_number", "created_at").Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&UnitDTO{}).
			Where("lot_number = ?", dto.LotNumber).Count(&count).Error; err != nil {
			return false, err
		}
		if count == 0 {
			return false, errs.NewObjectNotFoundError("lot number", dto.LotNumber)
		}
		return false, nil
	}

	r.tracker.TrackAggregate(dto.LotNumber, aggregate)
	return true, nil
}

// Get retrieves a unit by its encoded lot number.
func (r *GormUnitRepository) Get(ctx context.Context, lotNumber string) (*unit.Unit, error) {
	if lotNumber == "" {
		return nil, errs.NewValueIsRequiredError("lot number")
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "lot_number = ?", lotNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot number", lotNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStation retrieves all units currently at the given station.
func (r *GormUnitRepository) GetByStation(ctx context.Context, station string) ([]*unit.Unit, error) {
	var dtos []UnitDTO
	if err := r.db.WithContext(ctx).
		Order("lot_number").
		Find(&dtos, "current_station = ?", station).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(dtos)
}

// GetByOrder retrieves all units referencing the given order.
func (r *GormUnitRepository) GetByOrder(ctx context.Context, orderID string) ([]*unit.Unit, error) {
	var dtos []UnitDTO
	if err := r.db.WithContext(ctx).
		Order("lot_number").
		Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(dtos)
}

// CountByOrder counts the units referencing the given order.
func (r *GormUnitRepository) CountByOrder(ctx context.Context, orderID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// MaxSequence returns the highest lot sequence already minted for the
// given normalized station code, year, and week, or 0 when none exists.
func (r *GormUnitRepository) MaxSequence(
	ctx context.Context,
	stationCode string,
	year, week int,
) (int, error) {
	var maxSeq int
	err := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("station_code = ? AND year = ? AND week = ?", stationCode, year, week).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq, nil
}

// GetHeld retrieves all units currently parked in HOLD_AREA.
func (r *GormUnitRepository) GetHeld(ctx context.Context) ([]*unit.Unit, error) {
	var dtos []UnitDTO
	if err := r.db.WithContext(ctx).
		Order("lot_number").
		Find(&dtos, "current_step = ?", int(unit.HoldArea)).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(dtos)
}

// persistAudit writes the aggregate's queued audit entries and clears the
// queue. Runs inside the caller's transaction.
func (r *GormUnitRepository) persistAudit(ctx context.Context, aggregate *unit.Unit) error {
	pending := aggregate.PendingAuditEntries()
	if len(pending) == 0 {
		return nil
	}

	dtos := auditFromDomain(pending)
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	aggregate.ClearPendingAuditEntries()
	return nil
}

func (r *GormUnitRepository) toDomainSlice(dtos []UnitDTO) ([]*unit.Unit, error) {
	units := make([]*unit.Unit, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}
