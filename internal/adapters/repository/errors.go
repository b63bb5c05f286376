package repository

import "errors"

// Sentinel kinds for journal errors.
var (
	ErrEmpty  = errors.New("journal is empty")
	ErrClosed = errors.New("journal is closed")
)
