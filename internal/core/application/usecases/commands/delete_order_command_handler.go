package commands

import (
	"context"
	"time"
)

// DeleteOrderCommandHandler handles soft deletion of orders.
// The operation is idempotent: deleting an already-deleted or unknown order
// succeeds without modifying anything, and the original deletion timestamp
// is preserved.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the soft-delete command. Pending status and outstanding
// notification jobs do not block deletion.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	if err := orderRepo.SoftDelete(ctx, cmd.OrderID(), time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
