package controller

import (
	"github.com/Laisky/errors/v2"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

const loginFailedMessage = "login failed"

// isCredentialError reports whether err is a client-attributable login
// failure. Anything else (db down, timeouts) belongs on the 500 path.
func isCredentialError(err error) bool {
	return errors.Is(err, model.ErrInvalidCredentials) ||
		errors.Is(err, model.ErrAccountDeactivated)
}

// maskLoginError returns a sanitized login error for client responses.
// Unknown accounts and wrong passwords collapse into the same generic
// message; only the deactivated-account case stays distinguishable.
func maskLoginError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrAccountDeactivated) {
		return errors.WithStack(model.ErrAccountDeactivated)
	}

	if errors.Is(err, model.ErrInvalidCredentials) {
		return errors.WithStack(model.ErrInvalidCredentials)
	}

	return errors.WithStack(errors.New(loginFailedMessage))
}
