package services

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	// DefaultMaxSignatureBytes is the byte ceiling for a captured signature.
	DefaultMaxSignatureBytes = 5000

	// DefaultAllowedSignatureType is the content type accepted for signatures.
	DefaultAllowedSignatureType = "image/png"
)

// FileValidationError reports every constraint the signature artifact
// violated. Violations are collected without short-circuiting so the caller
// sees all problems at once.
type FileValidationError struct {
	Violations []string
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("signature validation failed: %s", strings.Join(e.Violations, "; "))
}

// AcceptanceValidator checks a submitted signature artifact against the
// configured size and type constraints. It performs no other content
// inspection; a blob that passes is stored verbatim.
type AcceptanceValidator struct {
	maxBytes     int
	allowedTypes []string
}

// NewAcceptanceValidator creates a validator with the given byte ceiling and
// allowed content types. Zero or nil arguments fall back to the defaults.
func NewAcceptanceValidator(maxBytes int, allowedTypes []string) AcceptanceValidator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSignatureBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = []string{DefaultAllowedSignatureType}
	}

	return AcceptanceValidator{
		maxBytes:     maxBytes,
		allowedTypes: allowedTypes,
	}
}

// Validate evaluates both the size and the type constraint and returns every
// violation found. An empty result means the signature is acceptable.
func (v AcceptanceValidator) Validate(signature []byte) []string {
	var violations []string

	if len(signature) > v.maxBytes {
		violations = append(violations, fmt.Sprintf(
			"signature is %d bytes, limit is %d", len(signature), v.maxBytes))
	}

	detected := http.DetectContentType(signature)
	if !v.typeAllowed(detected) {
		violations = append(violations, fmt.Sprintf(
			"signature content type %q is not allowed, expected one of %s",
			detected, strings.Join(v.allowedTypes, ", ")))
	}

	return violations
}

// ValidateOrError wraps Validate into a FileValidationError when any
// violation is present.
func (v AcceptanceValidator) ValidateOrError(signature []byte) error {
	if violations := v.Validate(signature); len(violations) > 0 {
		return &FileValidationError{Violations: violations}
	}
	return nil
}

func (v AcceptanceValidator) typeAllowed(detected string) bool {
	for _, allowed := range v.allowedTypes {
		if detected == allowed {
			return true
		}
	}
	return false
}
