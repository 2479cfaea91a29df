package store

import "errors"

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)
