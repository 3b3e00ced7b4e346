// Package http is the inbound HTTP adapter: a thin Echo server that
// translates operator requests into commands and queries and domain errors
// into HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startProductionHandler  commands.StartProductionCommandHandler
	markUnitReadyHandler    commands.MarkUnitReadyCommandHandler
	submitInspectionHandler commands.SubmitInspectionCommandHandler
	releaseHoldHandler      commands.ReleaseHoldCommandHandler

	// Query handlers
	getOrderProgressHandler  queries.GetOrderProgressQueryHandler
	getUnitsByStationHandler queries.GetUnitsByStationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	startProductionHandler commands.StartProductionCommandHandler,
	markUnitReadyHandler commands.MarkUnitReadyCommandHandler,
	submitInspectionHandler commands.SubmitInspectionCommandHandler,
	releaseHoldHandler commands.ReleaseHoldCommandHandler,
	getOrderProgressHandler queries.GetOrderProgressQueryHandler,
	getUnitsByStationHandler queries.GetUnitsByStationQueryHandler,
) *Server {
	return &Server{
		startProductionHandler:   startProductionHandler,
		markUnitReadyHandler:     markUnitReadyHandler,
		submitInspectionHandler:  submitInspectionHandler,
		releaseHoldHandler:       releaseHoldHandler,
		getOrderProgressHandler:  getOrderProgressHandler,
		getUnitsByStationHandler: getUnitsByStationHandler,
	}
}

// RegisterRoutes attaches all endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/production/start", s.StartProduction)
	api.POST("/units/:lotNumber/ready", s.MarkUnitReady)
	api.POST("/units/:lotNumber/inspection", s.SubmitInspection)
	api.POST("/units/:lotNumber/release", s.ReleaseHold)
	api.GET("/orders/:id/progress", s.GetOrderProgress)
	api.GET("/stations/:station/units", s.GetUnitsByStation)
}

// errorResponse is the JSON error body of every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy to HTTP statuses: validation
// failures are 400, unknown identifiers 404, illegal transitions and lost
// concurrency races 409, everything else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

type startProductionRequest struct {
	OrderID       string `json:"orderId"`
	Station       string `json:"station"`
	Quantity      int    `json:"quantity"`
	StartSequence int    `json:"startSequence"`
	Actor         string `json:"actor"`
}

type startProductionResponse struct {
	LotNumbers []string `json:"lotNumbers"`
}

// StartProduction handles POST /api/v1/production/start.
func (s *Server) StartProduction(ctx echo.Context) error {
	var req startProductionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewStartProductionCommand(
		req.OrderID, req.Station, req.Quantity, req.StartSequence, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	lots, err := s.startProductionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, startProductionResponse{LotNumbers: lots})
}

type actorRequest struct {
	Actor string `json:"actor"`
}

// MarkUnitReady handles POST /api/v1/units/:lotNumber/ready.
func (s *Server) MarkUnitReady(ctx echo.Context) error {
	var req actorRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkUnitReadyCommand(ctx.Param("lotNumber"), req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markUnitReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitInspectionRequest struct {
	Outcome      string            `json:"outcome"`
	Measurements map[string]string `json:"measurements"`
	Reasons      []string          `json:"reasons"`
	Note         string            `json:"note"`
	Actor        string            `json:"actor"`
}

// SubmitInspection handles POST /api/v1/units/:lotNumber/inspection.
func (s *Server) SubmitInspection(ctx echo.Context) error {
	var req submitInspectionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	outcome, err := parseOutcome(req.Outcome)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitInspectionCommand(
		ctx.Param("lotNumber"), outcome, req.Measurements, req.Reasons, req.Note, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseHold handles POST /api/v1/units/:lotNumber/release.
func (s *Server) ReleaseHold(ctx echo.Context) error {
	var req actorRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReleaseHoldCommand(ctx.Param("lotNumber"), req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.releaseHoldHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderProgressResponse struct {
	OrderID         string `json:"orderId"`
	ItemDescription string `json:"itemDescription"`
	Status          string `json:"status"`
	PlannedQuantity int    `json:"plannedQuantity"`
	Started         int    `json:"started"`
	Finished        int    `json:"finished"`
	Rejected        int    `json:"rejected"`
	Held            int    `json:"held"`
	Remaining       int    `json:"remaining"`
}

// GetOrderProgress handles GET /api/v1/orders/:id/progress.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	query, err := queries.NewGetOrderProgressQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	progress, err := s.getOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderProgressResponse{
		OrderID:         progress.OrderID,
		ItemDescription: progress.ItemDescription,
		Status:          progress.Status,
		PlannedQuantity: progress.PlannedQuantity,
		Started:         progress.Started,
		Finished:        progress.Finished,
		Rejected:        progress.Rejected,
		Held:            progress.Held,
		Remaining:       progress.Remaining,
	})
}

type stationUnitResponse struct {
	LotNumber    string `json:"lotNumber"`
	OrderID      string `json:"orderId"`
	CurrentStep  string `json:"currentStep"`
	Lifecycle    string `json:"lifecycle"`
	Overproduced bool   `json:"overproduced"`
	HeldFromStep string `json:"heldFromStep,omitempty"`
}

// GetUnitsByStation handles GET /api/v1/stations/:station/units.
func (s *Server) GetUnitsByStation(ctx echo.Context) error {
	query, err := queries.NewGetUnitsByStationQuery(ctx.Param("station"))
	if err != nil {
		return writeError(ctx, err)
	}

	units, err := s.getUnitsByStationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]stationUnitResponse, len(units))
	for i, u := range units {
		response[i] = stationUnitResponse{
			LotNumber:    u.LotNumber,
			OrderID:      u.OrderID,
			CurrentStep:  u.CurrentStep,
			Lifecycle:    u.Lifecycle,
			Overproduced: u.Overproduced,
			HeldFromStep: u.HeldFromStep,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseOutcome maps the wire outcome name to its enum value.
func parseOutcome(s string) (unit.Outcome, error) {
	switch s {
	case unit.OutcomeApproved.String():
		return unit.OutcomeApproved, nil
	case unit.OutcomeTemporaryReject.String():
		return unit.OutcomeTemporaryReject, nil
	case unit.OutcomeRejected.String():
		return unit.OutcomeRejected, nil
	default:
		return unit.OutcomeUnknown, errs.NewValueIsInvalidError("outcome")
	}
}
