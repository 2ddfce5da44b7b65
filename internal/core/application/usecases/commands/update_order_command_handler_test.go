package commands_test

import (
	"errors"
	"testing"

	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/ports"
	"printorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin      = identity.Identity{UID: "admin-1", Role: identity.Admin}
	ownVendor  = identity.Identity{UID: "vendor-1", Role: identity.Vendor}
	someVendor = identity.Identity{UID: "vendor-2", Role: identity.Vendor}
)

func strPtr(s string) *string { return &s }

func storedOrder(t *testing.T, st stage.Stage, vendorID string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{OrderID: "WC-1", Stage: st.String()}, vendorID, 1000, 1000)
	require.NoError(t, err)
	return o
}

func newUpdateHandler(factory commands.OrderUoWFactory, publisher ports.EventPublisher) commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(factory, stage.NewGraph(stage.Permissive), publisher, clock)
}

func TestNewUpdateOrderCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), order.Patch{}, admin)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderCommand(kernel.NewUUID(), order.Patch{Stage: strPtr("Packed")}, identity.Identity{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateOrderCommandHandler_Handle_ForwardMove(t *testing.T) {
	ctx := t.Context()
	current := storedOrder(t, stage.Printing, "vendor-1")

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	uow, factory := newUoW(repo)
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStageChanged", ctx, ports.OrderStageChanged{
		ID:       current.ID().String(),
		OrderID:  "WC-1",
		From:     "Printing",
		To:       "Packed",
		VendorID: "vendor-1",
		At:       fixedNow,
	}).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(current.ID(), order.Patch{Stage: strPtr("Packed")}, ownVendor)
	require.NoError(t, err)

	updated, err := newUpdateHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, stage.Packed, updated.Stage())
	assert.Equal(t, fixedNow.UnixMilli(), updated.UpdatedAt())
	assert.Equal(t, int64(1000), updated.CreatedAt())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_BackwardMoveRejected(t *testing.T) {
	ctx := t.Context()
	current := storedOrder(t, stage.Packed, "")

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	uow, factory := newUoW(repo)
	publisher := new(MockEventPublisher)

	cmd, _ := commands.NewUpdateOrderCommand(current.ID(), order.Patch{Stage: strPtr("Printing")}, admin)
	_, err := newUpdateHandler(factory, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, stage.Packed, current.Stage())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishStageChanged", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_NoStageChangeDoesNotPublish(t *testing.T) {
	ctx := t.Context()
	current := storedOrder(t, stage.Uploaded, "")

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	uow, factory := newUoW(repo)
	uow.On("Commit", ctx).Return(nil).Once()
	publisher := new(MockEventPublisher)

	cmd, _ := commands.NewUpdateOrderCommand(current.ID(), order.Patch{S3Key: strPtr("orders/1-a.pdf")}, admin)
	updated, err := newUpdateHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.HasArtifact())
	publisher.AssertNotCalled(t, "PublishStageChanged", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_VendorScope(t *testing.T) {
	ctx := t.Context()

	t.Run("other vendor should see the order as missing", func(t *testing.T) {
		current := storedOrder(t, stage.Printing, "vendor-1")
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
		_, factory := newUoW(repo)

		cmd, _ := commands.NewUpdateOrderCommand(current.ID(), order.Patch{Stage: strPtr("Packed")}, someVendor)
		_, err := newUpdateHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner should not change anything but the stage", func(t *testing.T) {
		current := storedOrder(t, stage.Printing, "vendor-1")
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
		_, factory := newUoW(repo)

		cmd, _ := commands.NewUpdateOrderCommand(current.ID(), order.Patch{BookTitle: strPtr("x")}, ownVendor)
		_, err := newUpdateHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestUpdateOrderCommandHandler_Handle_PublishFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	current := storedOrder(t, stage.Printing, "")

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	uow, factory := newUoW(repo)
	publisher := new(MockEventPublisher)
	publisher.On("PublishStageChanged", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	cmd, _ := commands.NewUpdateOrderCommand(current.ID(), order.Patch{Stage: strPtr("Delivered")}, admin)
	_, err := newUpdateHandler(factory, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUpstream)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	_, factory := newUoW(repo)

	cmd, _ := commands.NewUpdateOrderCommand(id, order.Patch{Stage: strPtr("Packed")}, admin)
	_, err := newUpdateHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
