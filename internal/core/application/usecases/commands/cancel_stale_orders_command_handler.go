package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// moved into processing and returns their reserved stock to the catalog,
// so abandoned checkouts do not hold inventory forever.
//
// Example:
//
//	handler := NewCancelStaleOrdersCommandHandler(uowFactory)
//	cmd, _ := NewCancelStaleOrdersCommand(24 * time.Hour)
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	// This would typically be called periodically by a scheduler
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order older than the command's age and returns
// the number of orders cancelled. All cancellations occur within a single
// transaction; each write is version-checked, so a concurrent status change
// aborts the batch and the next scheduler tick retries.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	catalog := uow.ProductCatalog()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	staleOrders, err := orderRepo.GetAllInPendingStatusBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range staleOrders {
		loadedVersion := aggregate.Version()

		changed, transitionErr := aggregate.TransitionTo(order.Cancelled)
		if transitionErr != nil {
			return 0, transitionErr
		}
		if !changed {
			continue
		}

		if err = releaseReservedStock(ctx, catalog, aggregate); err != nil {
			return 0, err
		}

		if err = orderRepo.UpdateVersioned(ctx, aggregate, loadedVersion); err != nil {
			return 0, err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
