package order

import (
	"errors"
	"fmt"
	"regexp"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrAddresseeIsNotConstructed is returned when an Addressee instance was not
// created through the NewAddressee factory method.
var ErrAddresseeIsNotConstructed = errors.New("Addressee must be created via NewAddressee constructor")

// phonePattern accepts an optional leading plus and 7 to 15 digits,
// which covers national numbers and E.164 formatted ones.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Addressee is a value object identifying the recipient of a parcel.
// It holds the resident's name and the phone number notifications are sent to.
//
// Addressee is immutable after construction. Both fields are required and the
// phone number must match the accepted format.
//
// Example:
//
//	addressee, err := order.NewAddressee("Maria Silva", "+5511999887766")
//	if err != nil {
//	    // name or phone failed validation
//	}
type Addressee struct {
	name        string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewAddressee creates an Addressee, validating that the name is present and
// the phone number matches the accepted format.
func NewAddressee(name, phoneNumber string) (Addressee, error) {
	addressee := Addressee{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressee.setName(name),
		addressee.setPhoneNumber(phoneNumber),
	); err != nil {
		return Addressee{}, err
	}

	return addressee, nil
}

// Validate ensures the Addressee was created through NewAddressee.
func (a Addressee) Validate() error {
	return a.guard.Validate(ErrAddresseeIsNotConstructed)
}

// Name returns the recipient's name.
func (a Addressee) Name() string {
	return a.name
}

// PhoneNumber returns the recipient's phone number.
func (a Addressee) PhoneNumber() string {
	return a.phoneNumber
}

// IsEqual compares two addressees by name and phone number.
func (a Addressee) IsEqual(other Addressee) bool {
	return a.name == other.name && a.phoneNumber == other.phoneNumber
}

func (a *Addressee) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("addressee name")
	}

	a.name = name
	return nil
}

func (a *Addressee) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("addressee phone number")
	}
	if !phonePattern.MatchString(phoneNumber) {
		return errs.NewValueIsInvalidErrorWithCause(
			"addressee phone number",
			fmt.Errorf("%q does not match the accepted phone format", phoneNumber),
		)
	}

	a.phoneNumber = phoneNumber
	return nil
}
