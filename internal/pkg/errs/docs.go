// Package errs provides the shared error vocabulary of the parcel hub.
// Every layer reports validation and lookup failures through these types, so
// callers can classify errors with errors.Is/errors.As instead of string
// matching.
//
// The package covers the recurring failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ObjectNotFoundError: a lookup by id or url token found nothing
//   - ValueIsOutOfRangeError, VersionIsInvalidError: specialized validation
//
// Each error type follows the same pattern: a sentinel variable (e.g.
// ErrValueIsRequired), a struct carrying the details, constructors with and
// without a cause, and Error/Unwrap methods so wrapped causes stay reachable.
//
// Domain-specific failures, like a pickup code mismatch, live next to the
// aggregate that raises them rather than here.
package errs
