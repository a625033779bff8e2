package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a parcel that arrived
// for a resident. Encapsulates the target condominium and the addressee who
// will be notified and later confirm the pickup.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, condominiumID, "Jordan Lee", "+5511987654321", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s awaiting pickup at %s", created.ID(), created.URL())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	condominiumID kernel.UUID
	addressee     order.Addressee
	code          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new parcel order.
// Validates both identifiers and the addressee's name and phone number.
// The pickup code is optional: empty means the handler generates one, a
// non-empty value must look like a generated code (six digits).
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	condominiumID kernel.UUID,
	addresseeName string,
	phoneNumber string,
	code string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCondominiumID(condominiumID),
		orderCommand.setAddressee(addresseeName, phoneNumber),
		orderCommand.setCode(code),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CondominiumID returns the condominium the parcel arrived at.
func (c CreateOrderCommand) CondominiumID() kernel.UUID {
	return c.condominiumID
}

// Addressee returns the validated recipient of the parcel.
func (c CreateOrderCommand) Addressee() order.Addressee {
	return c.addressee
}

// Code returns the caller-supplied pickup code, or the empty string when the
// handler should generate one.
func (c CreateOrderCommand) Code() string {
	return c.code
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCondominiumID(condominiumID kernel.UUID) error {
	if err := condominiumID.Validate(); err != nil {
		return err
	}

	c.condominiumID = condominiumID
	return nil
}

func (c *CreateOrderCommand) setAddressee(name string, phoneNumber string) error {
	addressee, err := order.NewAddressee(name, phoneNumber)
	if err != nil {
		return err
	}

	c.addressee = addressee
	return nil
}

func (c *CreateOrderCommand) setCode(code string) error {
	if code == "" {
		return nil
	}
	if err := order.ValidatePickupCode(code); err != nil {
		return err
	}

	c.code = code
	return nil
}
