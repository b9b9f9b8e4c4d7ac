package dispatch

import "errors"

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrInvalidResource   = errors.New("invalid resource")
	ErrDuplicateResource = errors.New("resource already registered")
)
