package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/ports"
)

// SyncUpstreamOrdersCommandHandler pulls orders from the upstream source and
// creates every one not already stored under the same external order id.
// New orders start at the first stage. The import runs in one transaction.
//
// Example:
//
//	handler := NewSyncUpstreamOrdersCommandHandler(source, uowFactory, time.Now, logger)
//	result, err := handler.Handle(ctx, NewSyncUpstreamOrdersCommand())
//	logger.Info("sync done", "imported", result.Imported, "skipped", result.Skipped)
type SyncUpstreamOrdersCommandHandler struct {
	source     ports.OrderSource
	uowFactory OrderUoWFactory
	now        func() time.Time
	logger     *slog.Logger
}

func NewSyncUpstreamOrdersCommandHandler(
	source ports.OrderSource,
	uowFactory OrderUoWFactory,
	now func() time.Time,
	logger *slog.Logger,
) SyncUpstreamOrdersCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SyncUpstreamOrdersCommandHandler{
		source:     source,
		uowFactory: uowFactory,
		now:        now,
		logger:     logger.With("component", "upstream-sync"),
	}
}

func (h SyncUpstreamOrdersCommandHandler) Handle(ctx context.Context, cmd SyncUpstreamOrdersCommand) (SyncResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncResult{}, err
	}

	upstream, err := h.source.FetchOrders(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	now := h.now()
	var result SyncResult

	for _, u := range upstream {
		orderID := strings.TrimSpace(u.OrderID)
		if orderID == "" {
			result.Skipped++
			continue
		}

		existing, findErr := repo.FindByOrderID(ctx, orderID)
		if findErr != nil {
			return SyncResult{}, findErr
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		created, newErr := order.ImportOrder(kernel.NewUUID(), order.Details{
			OrderID:   orderID,
			BookTitle: u.BookTitle,
			Binding:   u.Binding,
			Deadline:  u.Deadline,
		}, now)
		if newErr != nil {
			h.logger.WarnContext(ctx, "skipping upstream order", "orderId", orderID, "error", newErr)
			result.Skipped++
			continue
		}

		if err = repo.Add(ctx, created); err != nil {
			return SyncResult{}, err
		}
		result.Imported++
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncResult{}, err
	}

	h.logger.InfoContext(ctx, "upstream orders synced", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}
