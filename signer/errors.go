package signer

import (
	"errors"
	"fmt"
)

// ErrSigningPrecondition is wrapped by every error caused by a request that
// cannot be signed as given.
var ErrSigningPrecondition = errors.New("signing precondition failed")

var (
	// ErrMissingDate is returned when the Date header is absent or empty.
	ErrMissingDate = fmt.Errorf("%w: %s header is required", ErrSigningPrecondition, DateHeader)

	// ErrMissingContentType is returned when a body is signed without a
	// Content-Type header.
	ErrMissingContentType = fmt.Errorf("%w: %s header is required with a body", ErrSigningPrecondition, ContentTypeHeader)

	// ErrDuplicateHeader is returned when two signable header names are
	// equal after lower-casing.
	ErrDuplicateHeader = fmt.Errorf("%w: duplicate signable header", ErrSigningPrecondition)

	// ErrEmptySecret is returned when the signing key is empty.
	ErrEmptySecret = fmt.Errorf("%w: access key secret is empty", ErrSigningPrecondition)
)
