package catalog

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidCategory = errors.New("invalid category")
	ErrServiceNotFound = errors.New("service not found")
	ErrNotOwner        = errors.New("not authorized to modify this service")
)
