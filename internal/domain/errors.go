package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNoSnapshot      = errors.New("no snapshot available")
	ErrProviderFailure = errors.New("provider failure")
	ErrUnknownCategory = errors.New("unknown category")
)
