package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/ports"
)

// ErrURLTokenCollision is returned when a fresh URL token could not be found
// after several attempts. With 128-bit tokens this indicates a broken random
// source rather than genuine exhaustion.
var ErrURLTokenCollision = errors.New("could not generate a unique order url token")

const urlTokenAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the public URL token and, unless the command carries one, the
// secret pickup code, then persists the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created
// aggregate so the caller can render it and schedule the pickup notification.
// The URL token is checked against existing orders, deleted ones included,
// before the order is persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	url, err := h.freshURLToken(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	code := cmd.Code()
	if code == "" {
		if code, err = order.NewPickupCode(); err != nil {
			return nil, err
		}
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CondominiumID(), url, code, cmd.Addressee())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) freshURLToken(ctx context.Context, repo ports.OrderRepository) (string, error) {
	for range urlTokenAttempts {
		url, err := order.NewURLToken()
		if err != nil {
			return "", err
		}

		exists, err := repo.ExistsURL(ctx, url)
		if err != nil {
			return "", err
		}
		if !exists {
			return url, nil
		}
	}

	return "", ErrURLTokenCollision
}
