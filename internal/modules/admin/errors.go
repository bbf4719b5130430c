package admin

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrNotProvider      = errors.New("user is not a provider")
)
