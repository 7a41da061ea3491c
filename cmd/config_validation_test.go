package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStartupConfig_NilGetter(t *testing.T) {
	t.Parallel()

	err := validateStartupConfigWithGetter(nil)
	require.Error(t, err)
}

func TestValidateStartupConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg := map[string]any{
		"settings": map[string]any{
			"secret": "a-long-enough-signing-secret",
			"db": map[string]any{
				"addr": "127.0.0.1:27017",
				"db":   "zuinder",
			},
			"media": map[string]any{
				"endpoint":   "s3.example.com",
				"bucket":     "zuinder",
				"public_url": "https://s3.example.com/zuinder",
			},
			"server": map[string]any{
				"cors_hosts": []any{"example.com", "zuinder.com"},
			},
			"bootstrap": map[string]any{
				"email": "admin@example.com",
			},
		},
	}

	require.NoError(t, validateStartupConfigWithGetter(newMapConfigGetter(cfg)))
}

func TestValidateStartupConfig_MediaSectionOptional(t *testing.T) {
	t.Parallel()

	cfg := map[string]any{
		"settings": map[string]any{
			"secret": "a-long-enough-signing-secret",
			"db": map[string]any{
				"addr": "127.0.0.1:27017",
				"db":   "zuinder",
			},
		},
	}

	require.NoError(t, validateStartupConfigWithGetter(newMapConfigGetter(cfg)))
}

func TestValidateStartupConfig_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{
			"missing secret",
			func(cfg map[string]any) {
				delete(cfg["settings"].(map[string]any), "secret")
			},
			"settings.secret is required",
		},
		{
			"short secret",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["secret"] = "short"
			},
			"settings.secret must be at least",
		},
		{
			"db addr with scheme",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["db"].(map[string]any)["addr"] = "mongodb://localhost"
			},
			"settings.db.addr",
		},
		{
			"media without bucket",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["media"] = map[string]any{
					"endpoint":   "s3.example.com",
					"public_url": "https://s3.example.com/zuinder",
				}
			},
			"settings.media.bucket",
		},
		{
			"relative media public url",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["media"] = map[string]any{
					"endpoint":   "s3.example.com",
					"bucket":     "zuinder",
					"public_url": "/zuinder",
				}
			},
			"settings.media.public_url",
		},
		{
			"cors host with scheme",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["server"] = map[string]any{
					"cors_hosts": []any{"https://example.com"},
				}
			},
			"cors_hosts",
		},
		{
			"bad bootstrap email",
			func(cfg map[string]any) {
				cfg["settings"].(map[string]any)["bootstrap"] = map[string]any{
					"email": "not-an-email",
				}
			},
			"settings.bootstrap.email",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := map[string]any{
				"settings": map[string]any{
					"secret": "a-long-enough-signing-secret",
					"db": map[string]any{
						"addr": "127.0.0.1:27017",
						"db":   "zuinder",
					},
				},
			}
			tc.mutate(cfg)

			err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

// newMapConfigGetter builds a dotted-path getter for nested map-based
// test configuration.
func newMapConfigGetter(root map[string]any) configGetter {
	return func(key string) any {
		if key == "" {
			return nil
		}

		parts := strings.Split(key, ".")
		var current any = root
		for _, part := range parts {
			nextMap, ok := current.(map[string]any)
			if !ok {
				return nil
			}

			next, exists := nextMap[part]
			if !exists {
				return nil
			}
			current = next
		}

		return current
	}
}
