package order

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"parcelhub/internal/pkg/errs"
)

// urlTokenBytes is the entropy of a public url token. 16 random bytes keep
// the token unguessable while staying short enough for a pickup link.
const urlTokenBytes = 16

// pickupCodeDigits is the length of the numeric secret shared with the
// resident at registration time.
const pickupCodeDigits = 6

// NewURLToken generates a public, unguessable url token for an order.
// The caller is responsible for collision-checking it against the store
// before use; the token itself carries no uniqueness guarantee.
func NewURLToken() (string, error) {
	buf := make([]byte, urlTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate url token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ValidatePickupCode checks that a caller-supplied pickup code has the same
// shape as a generated one: exactly pickupCodeDigits decimal digits.
func ValidatePickupCode(code string) error {
	if len(code) != pickupCodeDigits {
		return errs.NewValueIsInvalidErrorWithCause(
			"code", fmt.Errorf("must be exactly %d digits", pickupCodeDigits))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"code", fmt.Errorf("must contain only digits"))
		}
	}
	return nil
}

// NewPickupCode generates the secret numeric code the resident presents at
// pickup. The code is zero-padded to a fixed width.
func NewPickupCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < pickupCodeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate pickup code: %w", err)
	}
	return fmt.Sprintf("%0*d", pickupCodeDigits, n), nil
}
