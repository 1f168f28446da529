// Package common defines shared constants and sentinel errors used across
// the directory core and its callers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Name validation errors, in the order the validator applies them.
	ErrNameEmpty        = errors.New("name is empty")
	ErrNameTooShort     = errors.New("name too short")
	ErrNameTooLong      = errors.New("name too long")
	ErrNameInvalidChars = errors.New("name contains invalid characters")

	// Handle validation errors, in the order the validator applies them.
	ErrHandleEmpty        = errors.New("handle is empty")
	ErrHandleHasSpace     = errors.New("handle contains whitespace")
	ErrHandleInvalidChars = errors.New("handle contains invalid characters")
	ErrHandleTooShort     = errors.New("handle too short")
	ErrHandleTooLong      = errors.New("handle too long")

	// Business rule / throttling errors.
	ErrDuplicateHandle = errors.New("handle already registered")
	ErrRateLimited     = errors.New("too many add attempts")

	// Backing store errors. ErrStoreUnavailable covers the load path,
	// ErrStoreFailure the append path; both wrap the transport cause.
	ErrStoreUnavailable = errors.New("directory store unavailable")
	ErrStoreFailure     = errors.New("directory store write failed")
)
