package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/ports"
)

// StartProductionCommandHandler turns a planned order into physical units:
// it mints consecutive lot numbers, registers the units at their winding
// station in step Wikkelen, and marks the order in progress.
//
// The overproduction guard lives here: units minted beyond the order's
// planned quantity are still created (physical production is never
// blocked) but flagged and detached to the unassigned sentinel, and one
// batch-level notification summarizes the excess after commit.
type StartProductionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewStartProductionCommandHandler creates a handler for production start
// operations.
func NewStartProductionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) StartProductionCommandHandler {
	return StartProductionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "start_production_handler"),
	}
}

// Handle processes the production start command and returns the minted lot
// numbers in creation order.
//
// The starting sequence is auto-computed as one past the highest sequence
// already minted for the station's code in the order's production week;
// an explicitly supplied higher sequence wins, a colliding lower one is
// ignored in favor of the computed value.
func (h *StartProductionCommandHandler) Handle(
	ctx context.Context,
	cmd StartProductionCommand,
) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	unitRepo := uow.UnitRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	station := cmd.Station()
	if station == "" {
		station = ord.OriginStation()
	}
	stationCode := kernel.NormalizeStationCode(station)

	existing, err := unitRepo.CountByOrder(ctx, ord.ID())
	if err != nil {
		return nil, err
	}

	maxSeq, err := unitRepo.MaxSequence(ctx, stationCode, ord.ISOYear()%100, ord.ISOWeek())
	if err != nil {
		return nil, err
	}
	startSeq := maxSeq + 1
	if cmd.StartSequence() > startSeq {
		startSeq = cmd.StartSequence()
	}

	now := h.clock.Now()
	lots := make([]string, 0, cmd.Quantity())
	excess := 0

	for i := range cmd.Quantity() {
		lot, lotErr := kernel.NewLotNumber(ord.ISOYear(), ord.ISOWeek(), station, startSeq+i)
		if lotErr != nil {
			return nil, lotErr
		}

		u, unitErr := unit.NewUnit(lot, ord.ID(), ord.ItemDescription(), station, cmd.Actor(), now)
		if unitErr != nil {
			return nil, unitErr
		}

		if existing+i+1 > ord.PlannedQuantity() {
			u.MarkOverproduced()
			excess++
		}

		if addErr := unitRepo.Add(ctx, u); addErr != nil {
			return nil, addErr
		}
		lots = append(lots, lot.String())
	}

	if err = ord.Start(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// One notification per batch, never per unit, and only after commit.
	if excess > 0 {
		publishNotifications(ctx, h.publisher, h.logger, []ports.Notification{{
			Title: "Overproduction detected",
			Message: fmt.Sprintf("%d unit(s) beyond the planned quantity of %d were produced for order %s",
				excess, ord.PlannedQuantity(), ord.ID()),
			Severity:      ports.SeverityWarning,
			Source:        "production-tracking",
			CorrelationID: ord.ID(),
		}})
	}

	return lots, nil
}
