package store

import "errors"

// ErrNotFound is returned when a record does not exist or is not owned by
// the caller. The two cases are deliberately indistinguishable so that a
// manager cannot probe for another manager's clients.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a uniqueness constraint would be violated.
var ErrDuplicate = errors.New("record already exists")
