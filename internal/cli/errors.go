package cli

import (
	"errors"

	"github.com/dmitrijs2005/classhub/internal/common"
)

// errorMessage maps an error kind to a one-line user message. The core
// only reports kinds and short machine reasons; the wording lives here.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNameEmpty):
		return "Please enter your name"
	case errors.Is(err, common.ErrNameTooShort):
		return "Name too short (min 2 characters)"
	case errors.Is(err, common.ErrNameTooLong):
		return "Name too long (max 50 characters)"
	case errors.Is(err, common.ErrNameInvalidChars):
		return "Name may only contain letters, spaces, hyphens, apostrophes and periods"
	case errors.Is(err, common.ErrHandleEmpty):
		return "Username cannot be empty"
	case errors.Is(err, common.ErrHandleHasSpace):
		return "Username cannot contain spaces"
	case errors.Is(err, common.ErrHandleInvalidChars):
		return "Invalid characters. Use only letters, numbers, hyphens, underscores and periods"
	case errors.Is(err, common.ErrHandleTooShort):
		return "Username too short (min 3 characters)"
	case errors.Is(err, common.ErrHandleTooLong):
		return "Username too long (max 100 characters)"
	case errors.Is(err, common.ErrDuplicateHandle):
		return "This username already exists in the directory"
	case errors.Is(err, common.ErrRateLimited):
		return "Too many attempts. Wait half a minute and try again"
	case errors.Is(err, common.ErrStoreUnavailable):
		return "Unable to load the directory right now. Please try again later"
	case errors.Is(err, common.ErrStoreFailure):
		return "Error adding to the directory. Please try again later"
	default:
		return "Unexpected error: " + err.Error()
	}
}
