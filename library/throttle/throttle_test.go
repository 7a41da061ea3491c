package throttle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoginThrottle_RejectsBadConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := NewLoginThrottle(ctx, &LoginThrottleCfg{
		TotalNPerSec: 0, TotalBurst: 10,
		EachAccountNPerSec: 1, EachAccountBurst: 2,
	})
	require.Error(t, err)

	_, err = NewLoginThrottle(ctx, &LoginThrottleCfg{
		TotalNPerSec: 10, TotalBurst: 5,
		EachAccountNPerSec: 1, EachAccountBurst: 2,
	})
	require.Error(t, err)
}

func TestLoginThrottle_PerAccountLimit(t *testing.T) {
	t.Parallel()

	lt, err := NewLoginThrottle(context.Background(), &LoginThrottleCfg{
		TotalNPerSec: 100, TotalBurst: 200,
		EachAccountNPerSec: 2, EachAccountBurst: 3,
	})
	require.NoError(t, err)

	allowed := 0
	for i := 0; i < 10; i++ {
		if lt.Allow("alice@example.com") {
			allowed++
		}
	}

	// rapid attempts on one account drain its burst quickly
	require.GreaterOrEqual(t, allowed, 1)
	require.LessOrEqual(t, allowed, 4)

	// a fresh account has its own budget
	require.True(t, lt.Allow("bob@example.com"))
}
