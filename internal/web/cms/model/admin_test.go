package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAdmin_Defaults(t *testing.T) {
	t.Parallel()

	admin := NewAdmin()
	require.False(t, admin.ID.IsZero())
	require.False(t, admin.CreatedAt.IsZero())
	require.Equal(t, AdminRoleAdmin, admin.Role)
	require.True(t, admin.IsActive)
	require.Nil(t, admin.LastLogin)
}

func TestAdmin_PasswordNeverSerialized(t *testing.T) {
	t.Parallel()

	admin := NewAdmin()
	admin.Email = "admin@example.com"
	admin.Password = "$2a$10$secrethash"

	raw, err := json.Marshal(admin)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secrethash")
	require.Contains(t, string(raw), "admin@example.com")
}
