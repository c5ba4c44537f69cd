package account

import "errors"

var (
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	ErrEmailTaken         = errors.New("account: email already registered")
	ErrMissingFields      = errors.New("account: name, email, and password are required")
	ErrNotAuthenticated   = errors.New("account: not authenticated")
	ErrNotFound           = errors.New("account: not found")
)
