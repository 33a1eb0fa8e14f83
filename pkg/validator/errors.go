package validator

import "errors"

// ErrValidationFailed is matched by every non-empty ValidationErrors.
var ErrValidationFailed = errors.New("validation failed")
