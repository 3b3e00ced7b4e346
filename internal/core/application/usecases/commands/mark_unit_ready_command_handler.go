package commands

import (
	"context"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// MarkUnitReadyCommandHandler advances a unit from Wikkelen to Lossen when
// the winding operator reports it ready for unload.
//
// The write is conditioned on the unit still being in its loaded step, so
// two operators racing on the same unit surface as a Conflict instead of a
// silent double transition.
type MarkUnitReadyCommandHandler struct {
	uowFactory UnitUoWFactory
	router     services.StationRouter
	clock      ports.Clock
}

// NewMarkUnitReadyCommandHandler creates a handler for ready-for-unload
// operations.
func NewMarkUnitReadyCommandHandler(
	uowFactory UnitUoWFactory,
	router services.StationRouter,
	clock ports.Clock,
) MarkUnitReadyCommandHandler {
	return MarkUnitReadyCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		clock:      clock,
	}
}

// Handle processes the mark-ready command.
func (h *MarkUnitReadyCommandHandler) Handle(ctx context.Context, cmd MarkUnitReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitRepo := uow.UnitRepository()
	u, err := unitRepo.Get(ctx, cmd.LotNumber())
	if err != nil {
		return err
	}

	// Beyond Wikkelen, advancing requires an inspection decision; this
	// command only covers the winding operator's ready signal.
	expectedStep := u.CurrentStep()
	if expectedStep != unit.Wikkelen {
		return errs.NewInvalidTransitionError(
			u.LotNumber().String(), expectedStep.String(), unit.Lossen.String())
	}

	if err = h.router.Advance(u, cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = unitRepo.UpdateInStep(ctx, u, expectedStep); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
