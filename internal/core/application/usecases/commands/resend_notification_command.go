package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrResendNotificationCommandIsNotConstructed = errors.New(
	"ResendNotificationCommand must be created via NewResendNotificationCommand constructor",
)

// ResendNotificationCommand represents an operator request to schedule a new
// pickup notification for an existing order, typically after the automatic
// one failed or was never enqueued.
type ResendNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendNotificationCommand creates a command to re-notify an addressee.
func NewResendNotificationCommand(orderID kernel.UUID) (ResendNotificationCommand, error) {
	resendCommand := ResendNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resendCommand.setOrderID(orderID); err != nil {
		return ResendNotificationCommand{}, err
	}

	return resendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to re-notify about.
func (c ResendNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResendNotificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
