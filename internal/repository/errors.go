package repository

import "errors"

// ErrNotFound is returned by every store when the target id does not exist.
var ErrNotFound = errors.New("record not found")
