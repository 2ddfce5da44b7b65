package commands_test

import (
	"errors"
	"testing"
	"time"

	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestNewCreateOrderCommand(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, order.Details{})
	require.Error(t, err)

	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, order.Details{BookTitle: "Atlas"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, clock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(id))
	assert.Equal(t, stage.Uploaded, created.Stage())
	assert.Equal(t, created.CreatedAt(), created.UpdatedAt())
	assert.Equal(t, fixedNow.UnixMilli(), created.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), clock)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_InvalidDetails(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Details{Deadline: "tomorrow"})
	require.NoError(t, err)
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, clock)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Details{})

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, clock)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Details{})

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()
	uow, factory := newUoW(repo)

	h := commands.NewCreateOrderCommandHandler(factory, clock)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Details{})

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow, factory := newUoW(repo)
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, clock)
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
}
