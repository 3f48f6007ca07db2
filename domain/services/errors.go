package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// to 400/404 responses; anything else is treated as a storage failure and
// surfaces as a generic 500.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)
