package storage

import "errors"

// ErrDuplicate is returned when a write violates a uniqueness constraint,
// e.g. a second applicant with the same national ID or a taken username.
var ErrDuplicate = errors.New("duplicate record")
