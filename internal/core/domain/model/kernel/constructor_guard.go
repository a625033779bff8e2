package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when a nil error is passed as the validation
// error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: the flag is only set by NewConstructorGuard,
// so a struct literal that bypassed the constructor fails Validate.
//
// Example usage:
//
//	type Addressee struct {
//	    name  string
//	    phone string
//	    guard ConstructorGuard
//	}
//
//	func NewAddressee(name, phone string) (Addressee, error) {
//	    // validate fields ...
//	    return Addressee{name: name, phone: phone, guard: NewConstructorGuard()}, nil
//	}
//
//	func (a Addressee) Validate() error {
//	    return a.guard.Validate(ErrAddresseeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil when it was, validationError when it was not,
// and ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
