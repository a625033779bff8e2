package commands

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/domain/services"
)

// AcceptOrderCommandHandler handles the pickup confirmation flow:
// resolve the order by its public url, verify the secret code, validate the
// signature artifact, and atomically flip the order to Delivered.
//
// The final transition is a conditional update guarded by the Pending status,
// so when two callers race on the same url exactly one of them wins; the
// other receives order.ErrOrderAlreadyAccepted.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.AcceptanceValidator
}

// NewAcceptOrderCommandHandler creates a handler for pickup confirmations.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.AcceptanceValidator,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the pickup confirmation and returns the delivered order.
// Checks run in a fixed sequence: existence, code match, pending status,
// signature validity. On a code mismatch or a validation failure the order is
// not modified in any way.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	aggregate, err := orderRepo.GetByURL(ctx, cmd.URL())
	if err != nil {
		return nil, err
	}

	if !aggregate.MatchCode(cmd.Code()) {
		return nil, order.ErrCodeMismatch
	}

	if err = aggregate.Status().ValidateDeliver(); err != nil {
		return nil, err
	}

	if err = h.validator.ValidateOrError(cmd.Signature()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	won, err := orderRepo.CompareAndSetDelivered(ctx, cmd.URL(), cmd.Signature(), now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, order.ErrOrderAlreadyAccepted
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The conditional update already performed the transition in the store;
	// mirror it on the loaded aggregate. A store that hands out live
	// instances has flipped this one itself, so the transition error from a
	// second Deliver is not a failure of the winning call.
	if deliverErr := aggregate.Deliver(cmd.Signature()); deliverErr != nil &&
		!errors.Is(deliverErr, order.ErrOrderAlreadyAccepted) {
		return nil, deliverErr
	}

	return aggregate, nil
}
