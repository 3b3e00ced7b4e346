package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func plannedOrder(t *testing.T, plannedQuantity int) *order.Order {
	t.Helper()
	ord, err := order.NewOrder("ORD-100", "pipe DN200", plannedQuantity, "BH11", 2026, 35)
	require.NoError(t, err)
	return ord
}

func TestStartProductionCommandHandler_Handle_MintsConsecutiveLots(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartProductionCommand("ORD-100", "", 2, 0, "operator-1")
	require.NoError(t, err)

	ord := plannedOrder(t, 2)
	orderRepo := new(MockOrderRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		orderRepo.On("Get", ctx, "ORD-100").Return(ord, nil).Once(),
		unitRepo.On("CountByOrder", ctx, "ORD-100").Return(0, nil).Once(),
		unitRepo.On("MaxSequence", ctx, "011", 26, 35).Return(0, nil).Once(),
		unitRepo.On("Add", mock.Anything, mock.AnythingOfType("*unit.Unit")).Return(nil).Twice(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockNotificationPublisher)

	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)}, discardLogger())
	lots, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, []string{"402635011400001", "402635011400002"}, lots)
	assert.Equal(t, order.InProgress, ord.Status())
	orderRepo.AssertExpectations(t)
	unitRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartProductionCommandHandler_Handle_FlagsOverproduction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartProductionCommand("ORD-100", "BH11", 3, 0, "operator-1")
	require.NoError(t, err)

	ord := plannedOrder(t, 2)
	var added []*unit.Unit

	orderRepo := new(MockOrderRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		orderRepo.On("Get", ctx, "ORD-100").Return(ord, nil).Once(),
		unitRepo.On("CountByOrder", ctx, "ORD-100").Return(0, nil).Once(),
		unitRepo.On("MaxSequence", ctx, "011", 26, 35).Return(0, nil).Once(),
		unitRepo.On("Add", mock.Anything, mock.AnythingOfType("*unit.Unit")).
			Run(func(args mock.Arguments) {
				added = append(added, args.Get(1).(*unit.Unit))
			}).Return(nil).Times(3),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	var published []ports.Notification
	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.Notification")).
		Run(func(args mock.Arguments) {
			published = append(published, args.Get(1).(ports.Notification))
		}).Return(nil).Once()

	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)}, discardLogger())
	lots, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, lots, 3)
	require.Len(t, added, 3)
	assert.False(t, added[0].IsOverproduced())
	assert.False(t, added[1].IsOverproduced())
	assert.True(t, added[2].IsOverproduced())
	assert.Equal(t, "ORD-100", added[1].OrderID())
	assert.Equal(t, unit.UnassignedOrder, added[2].OrderID())

	// One batch-level warning, not one per excess unit.
	require.Len(t, published, 1)
	assert.Equal(t, ports.SeverityWarning, published[0].Severity)
	assert.Equal(t, "ORD-100", published[0].CorrelationID)

	orderRepo.AssertExpectations(t)
	unitRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartProductionCommandHandler_Handle_ExplicitHigherSequenceWins(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartProductionCommand("ORD-100", "BH11", 1, 40, "operator-1")
	require.NoError(t, err)

	ord := plannedOrder(t, 2)
	orderRepo := new(MockOrderRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		orderRepo.On("Get", ctx, "ORD-100").Return(ord, nil).Once(),
		unitRepo.On("CountByOrder", ctx, "ORD-100").Return(0, nil).Once(),
		unitRepo.On("MaxSequence", ctx, "011", 26, 35).Return(12, nil).Once(),
		unitRepo.On("Add", mock.Anything, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockNotificationPublisher)

	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)}, discardLogger())
	lots, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"402635011400040"}, lots)
}

func TestStartProductionCommandHandler_Handle_CollidingLowerSequenceIgnored(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartProductionCommand("ORD-100", "BH11", 1, 5, "operator-1")
	require.NoError(t, err)

	ord := plannedOrder(t, 2)
	orderRepo := new(MockOrderRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		orderRepo.On("Get", ctx, "ORD-100").Return(ord, nil).Once(),
		unitRepo.On("CountByOrder", ctx, "ORD-100").Return(0, nil).Once(),
		unitRepo.On("MaxSequence", ctx, "011", 26, 35).Return(12, nil).Once(),
		unitRepo.On("Add", mock.Anything, mock.AnythingOfType("*unit.Unit")).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockNotificationPublisher)

	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)}, discardLogger())
	lots, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"402635011400013"}, lots)
}

func TestStartProductionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.StartProductionCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	publisher := new(MockNotificationPublisher)
	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Now()}, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestStartProductionCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartProductionCommand("ORD-404", "", 1, 0, "operator-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		orderRepo.On("Get", ctx, "ORD-404").Return(nil, errors.New("object not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockNotificationPublisher)

	h := commands.NewStartProductionCommandHandler(
		factory, publisher, fixedClock{now: time.Now()}, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
