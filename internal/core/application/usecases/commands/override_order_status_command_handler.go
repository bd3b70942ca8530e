package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// OverrideOrderStatusCommandHandler handles administrative status corrections.
// Unlike the regular transition handler it does not consult the lifecycle
// state graph, but it shares the same optimistic-concurrency contract: a
// forced write still bumps the version and still fails on a stale read.
type OverrideOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOverrideOrderStatusCommandHandler creates a handler for status overrides.
// Requires an OrderUoWFactory for transactional persistence.
func NewOverrideOrderStatusCommandHandler(uowFactory OrderUoWFactory) OverrideOrderStatusCommandHandler {
	return OverrideOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command and returns the updated order.
// Forcing the status the order already has succeeds without a write.
func (h *OverrideOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd OverrideOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Version() != cmd.ExpectedVersion() {
		return nil, errs.NewVersionConflictError("order", cmd.OrderID(), cmd.ExpectedVersion())
	}

	changed, err := aggregate.ForceStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if !changed {
		return aggregate, nil
	}

	if err = orderRepo.UpdateVersioned(ctx, aggregate, cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
