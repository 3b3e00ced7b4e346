package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// SubmitInspectionCommandHandler records a quality-check decision and
// routes the unit accordingly: approved units advance, temporary rejects
// are parked in the hold area, rejects are scrapped.
//
// The inspection record and the resulting transition are committed
// atomically; notifications about non-approved outcomes go out only after
// the commit succeeded.
type SubmitInspectionCommandHandler struct {
	uowFactory UnitUoWFactory
	router     services.StationRouter
	publisher  ports.NotificationPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewSubmitInspectionCommandHandler creates a handler for inspection
// submissions.
func NewSubmitInspectionCommandHandler(
	uowFactory UnitUoWFactory,
	router services.StationRouter,
	publisher ports.NotificationPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) SubmitInspectionCommandHandler {
	return SubmitInspectionCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "submit_inspection_handler"),
	}
}

// Handle processes the inspection submission.
//
// The measurement field required for the unit's item class (wall thickness
// for standard items, flange thickness for flanged ones) must be present;
// missing it fails the whole submission before any mutation. The write is
// conditioned on the step the unit was loaded in, so concurrent decisions
// on the same unit surface as a Conflict.
func (h *SubmitInspectionCommandHandler) Handle(ctx context.Context, cmd SubmitInspectionCommand) error {
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

	measurements := cmd.Measurements()
	required := u.ItemClass().RequiredMeasurement()
	if _, ok := measurements[required]; !ok {
		return errs.NewValueIsRequiredError(fmt.Sprintf("measurement %q", required))
	}

	now := h.clock.Now()
	inspection, err := unit.NewInspection(cmd.Outcome(), cmd.Reasons(), cmd.Note(), now)
	if err != nil {
		return err
	}

	expectedStep := u.CurrentStep()
	if err = u.AddInspection(inspection); err != nil {
		return err
	}
	u.RecordMeasurements(measurements, now)

	if err = h.router.RouteInspection(u, cmd.Outcome(), cmd.Actor(), now); err != nil {
		return err
	}

	if err = unitRepo.UpdateInStep(ctx, u, expectedStep); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if notification, ok := h.buildNotification(cmd, u); ok {
		publishNotifications(ctx, h.publisher, h.logger, []ports.Notification{notification})
	}

	return nil
}

// buildNotification composes the post-commit notification for inspections
// that need operator attention: every non-approved outcome, plus approved
// ones carrying a note.
func (h *SubmitInspectionCommandHandler) buildNotification(
	cmd SubmitInspectionCommand,
	u *unit.Unit,
) (ports.Notification, bool) {
	lot := u.LotNumber().String()

	switch cmd.Outcome() {
	case unit.OutcomeTemporaryReject:
		return ports.Notification{
			Title: "Unit held for rework",
			Message: fmt.Sprintf("unit %s was temporarily rejected at %s: %s",
				lot, u.CurrentStation(), strings.Join(cmd.Reasons(), ", ")),
			Severity:      ports.SeverityWarning,
			Source:        "production-tracking",
			CorrelationID: lot,
		}, true
	case unit.OutcomeRejected:
		return ports.Notification{
			Title: "Unit rejected",
			Message: fmt.Sprintf("unit %s was rejected and moved to %s: %s",
				lot, services.StationRejected, strings.Join(cmd.Reasons(), ", ")),
			Severity:      ports.SeverityError,
			Source:        "production-tracking",
			CorrelationID: lot,
		}, true
	default:
		if cmd.Note() == "" {
			return ports.Notification{}, false
		}
		return ports.Notification{
			Title:         "Inspection note",
			Message:       fmt.Sprintf("unit %s approved with note: %s", lot, cmd.Note()),
			Severity:      ports.SeverityInfo,
			Source:        "production-tracking",
			CorrelationID: lot,
		}, true
	}
}
