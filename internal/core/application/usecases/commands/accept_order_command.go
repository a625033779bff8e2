package commands

import (
	"errors"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a pickup confirmation request. The caller
// proves possession of the parcel link (url) and the secret code, and
// provides the signature captured at handover.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	url       string
	code      string
	signature []byte

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to confirm a parcel pickup.
// The url and code must be non-empty; the signature content is validated
// later by the handler's AcceptanceValidator.
func NewAcceptOrderCommand(url string, code string, signature []byte) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setURL(url),
		acceptCommand.setCode(code),
		acceptCommand.setSignature(signature),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// URL returns the public token identifying the order.
func (c AcceptOrderCommand) URL() string {
	return c.url
}

// Code returns the secret pickup code supplied by the caller.
func (c AcceptOrderCommand) Code() string {
	return c.code
}

// Signature returns the signature artifact captured at pickup.
func (c AcceptOrderCommand) Signature() []byte {
	return c.signature
}

func (c *AcceptOrderCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	c.url = url
	return nil
}

func (c *AcceptOrderCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *AcceptOrderCommand) setSignature(signature []byte) error {
	if len(signature) == 0 {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}
