package controller

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

func TestMaskLoginError(t *testing.T) {
	t.Parallel()

	require.NoError(t, maskLoginError(nil))

	err := maskLoginError(errors.Wrap(model.ErrInvalidCredentials, "admin lookup"))
	require.True(t, errors.Is(err, model.ErrInvalidCredentials))

	err = maskLoginError(errors.Wrap(model.ErrAccountDeactivated, "login"))
	require.True(t, errors.Is(err, model.ErrAccountDeactivated))

	// internal details never leak into the client message
	err = maskLoginError(errors.New("mongo: connection reset"))
	require.EqualError(t, err, loginFailedMessage)
}

func TestIsCredentialError(t *testing.T) {
	t.Parallel()

	require.True(t, isCredentialError(errors.Wrap(model.ErrInvalidCredentials, "login")))
	require.True(t, isCredentialError(errors.Wrap(model.ErrAccountDeactivated, "login")))

	// infrastructure failures take the 500 path, not a masked 401
	require.False(t, isCredentialError(errors.New("mongo: connection reset")))
	require.False(t, isCredentialError(errors.Wrap(model.ErrNotFound, "load admin")))
}
