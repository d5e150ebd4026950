package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrSearchNotFound = errors.New("search record not found")
	ErrInvalidSearch  = errors.New("search text and domain name are required")
)
