package commands

import (
	"context"

	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// ReleaseHoldCommandHandler returns a reworked unit from the hold area to
// the step it was held from. The re-entry step is recorded on the unit
// itself, so the caller cannot steer a held unit anywhere else.
type ReleaseHoldCommandHandler struct {
	uowFactory UnitUoWFactory
	router     services.StationRouter
	clock      ports.Clock
}

// NewReleaseHoldCommandHandler creates a handler for hold release
// operations.
func NewReleaseHoldCommandHandler(
	uowFactory UnitUoWFactory,
	router services.StationRouter,
	clock ports.Clock,
) ReleaseHoldCommandHandler {
	return ReleaseHoldCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		clock:      clock,
	}
}

// Handle processes the hold release command.
func (h *ReleaseHoldCommandHandler) Handle(ctx context.Context, cmd ReleaseHoldCommand) error {
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

	expectedStep := u.CurrentStep()
	if err = h.router.ReleaseHold(u, cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = unitRepo.UpdateInStep(ctx, u, expectedStep); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
