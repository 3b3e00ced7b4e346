package cmd

import (
	"log/slog"
	"time"

	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.NotificationPublisher
	clock      ports.Clock
	router     services.StationRouter
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	staleAfter time.Duration,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		clock:      ports.NewSystemClock(),
		router:     services.NewStationRouter(),
		staleAfter: staleAfter,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateStartProductionCommandHandler() commands.StartProductionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartProductionCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateMarkUnitReadyCommandHandler() commands.MarkUnitReadyCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkUnitReadyCommandHandler(f, c.router, c.clock)
}

func (c *CompositionRoot) CreateSubmitInspectionCommandHandler() commands.SubmitInspectionCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitInspectionCommandHandler(f, c.router, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateReleaseHoldCommandHandler() commands.ReleaseHoldCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseHoldCommandHandler(f, c.router, c.clock)
}

func (c *CompositionRoot) CreateSendHoldRemindersCommandHandler() commands.SendHoldRemindersCommandHandler {
	var f commands.UnitUoWFactory = FuncUnitUoWFactory(func() commands.UnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendHoldRemindersCommandHandler(f, c.publisher, c.clock, c.staleAfter, c.logger)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	return queries.NewGetOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitsByStationQueryHandler() queries.GetUnitsByStationQueryHandler {
	return queries.NewGetUnitsByStationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendHoldRemindersCommandHandler(), c.logger)
}

type FuncUnitUoWFactory func() commands.UnitUoW

func (f FuncUnitUoWFactory) Create() commands.UnitUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
