package model

import "github.com/Laisky/errors/v2"

// ErrInvalidCredentials indicates the login credentials are invalid.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAccountDeactivated indicates the admin account exists but is disabled.
var ErrAccountDeactivated = errors.New("account is deactivated")

// ErrNotFound indicates no document matched the lookup.
var ErrNotFound = errors.New("not found")

// ErrValidation marks client-side input errors; wrap it with a
// descriptive message so handlers can map it to HTTP 400.
var ErrValidation = errors.New("validation failed")
