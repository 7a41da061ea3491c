// Package throttle rate-limits login attempts per account.
package throttle

import (
	"context"
	"sync"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/log"
)

// LoginThrottleCfg configuration for LoginThrottle.
type LoginThrottleCfg struct {
	// TotalNPerSec / TotalBurst bound attempts across all accounts.
	TotalNPerSec, TotalBurst int
	// EachAccountNPerSec / EachAccountBurst bound attempts per account.
	EachAccountNPerSec, EachAccountBurst int
}

// LoginThrottle throttles login attempts, both globally and per account.
type LoginThrottle struct {
	sync.Mutex
	cfg              *LoginThrottleCfg
	totalRatelimiter *gutils.RateLimiter
	accountLimiters  *sync.Map
}

// NewLoginThrottle creates a new LoginThrottle.
func NewLoginThrottle(ctx context.Context, cfg *LoginThrottleCfg) (t *LoginThrottle, err error) {
	if cfg.TotalNPerSec <= 0 || cfg.EachAccountNPerSec <= 0 {
		return nil, errors.New("NPerSec must be bigger than 0")
	}
	if cfg.TotalBurst < cfg.TotalNPerSec || cfg.EachAccountBurst < cfg.EachAccountNPerSec {
		return nil, errors.New("burst must be bigger than NPerSec")
	}

	var trl *gutils.RateLimiter
	if trl, err = gutils.NewRateLimiter(ctx, gutils.RateLimiterArgs{
		Max:     cfg.TotalBurst,
		NPerSec: cfg.TotalNPerSec,
	}); err != nil {
		return nil, errors.Wrap(err, "create total ratelimiter")
	}

	t = &LoginThrottle{
		totalRatelimiter: trl,
		accountLimiters:  new(sync.Map),
		cfg:              cfg,
	}
	return t, nil
}

// Allow reports whether a login attempt for account may proceed.
func (t *LoginThrottle) Allow(account string) (ok bool) {
	var (
		ali any
		al  *gutils.RateLimiter
	)
	if ali, ok = t.accountLimiters.Load(account); !ok {
		t.Lock()
		if ali, ok = t.accountLimiters.Load(account); !ok {
			var err error
			if al, err = gutils.NewRateLimiter(
				context.Background(),
				gutils.RateLimiterArgs{
					Max:     t.cfg.EachAccountBurst,
					NPerSec: t.cfg.EachAccountNPerSec,
				}); err != nil {
				log.Logger.Panic("create ratelimiter for account", zap.Error(err),
					zap.Int("Max", t.cfg.EachAccountBurst),
					zap.Int("NPerSec", t.cfg.EachAccountNPerSec))
			}
			t.accountLimiters.Store(account, al)
		} else {
			al = ali.(*gutils.RateLimiter)
		}
		t.Unlock()
	} else {
		al = ali.(*gutils.RateLimiter)
	}

	return al.Allow() && t.totalRatelimiter.Allow()
}
