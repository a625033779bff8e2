package commands

import (
	"context"
)

// ResendNotificationCommandHandler loads an existing order and asks the
// dispatcher to schedule a fresh pickup notification for it.
//
// The dispatcher enforces at most one outstanding job per order; a second
// resend while the first is still queued fails with ports.ErrDuplicateJob
// and the caller may retry once the prior job terminates.
type ResendNotificationCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher NotificationDispatcher
}

// NewResendNotificationCommandHandler creates a handler for operator resends.
func NewResendNotificationCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher NotificationDispatcher,
) ResendNotificationCommandHandler {
	return ResendNotificationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle resolves the order and enqueues the notification. Returns
// errs.ObjectNotFoundError for unknown or deleted orders; queue errors
// propagate as-is since no order state was changed.
func (h *ResendNotificationCommandHandler) Handle(ctx context.Context, cmd ResendNotificationCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.dispatcher.EnqueueResend(ctx, aggregate)
}
