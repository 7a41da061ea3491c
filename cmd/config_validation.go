package cmd

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
)

// configGetter retrieves raw configuration values by dotted key path.
type configGetter func(key string) any

// validateStartupConfig validates startup configuration from the shared
// config source. It returns an error when any configured value is
// malformed or violates constraints.
func validateStartupConfig() error {
	return validateStartupConfigWithGetter(func(key string) any {
		return gconfig.Shared.Get(key)
	})
}

// validateStartupConfigWithGetter validates startup configuration via a
// key-value getter.
func validateStartupConfigWithGetter(get configGetter) error {
	if get == nil {
		return errors.New("config getter is nil")
	}

	validationErrs := make([]string, 0)

	validateSecretConfig(get, &validationErrs)
	validateDBConfig(get, &validationErrs)
	validateMediaConfig(get, &validationErrs)
	validateServerConfig(get, &validationErrs)
	validateBootstrapConfig(get, &validationErrs)

	if len(validationErrs) == 0 {
		return nil
	}

	return errors.Errorf("invalid configuration:\n - %s", strings.Join(validationErrs, "\n - "))
}

// minSecretLength is the minimum accepted JWT signing secret length.
const minSecretLength = 16

// validateSecretConfig validates the session token signing secret.
func validateSecretConfig(get configGetter, errs *[]string) {
	secret, ok := get("settings.secret").(string)
	if !ok || strings.TrimSpace(secret) == "" {
		appendValidationError(errs, "settings.secret is required")
		return
	}

	if len(secret) < minSecretLength {
		appendValidationError(errs,
			"settings.secret must be at least %d characters", minSecretLength)
	}
}

// validateDBConfig validates the mongodb connection settings.
func validateDBConfig(get configGetter, errs *[]string) {
	addr, ok := get("settings.db.addr").(string)
	if !ok || !isValidHost(addr) {
		appendValidationError(errs, "settings.db.addr must be a host[:port] without scheme")
	}

	dbName, ok := get("settings.db.db").(string)
	if !ok || strings.TrimSpace(dbName) == "" {
		appendValidationError(errs, "settings.db.db is required")
	}
}

// validateMediaConfig validates the optional object store settings. The
// whole section may be absent; when an endpoint is set the bucket and
// public URL must be usable too.
func validateMediaConfig(get configGetter, errs *[]string) {
	endpoint, _ := get("settings.media.endpoint").(string)
	if strings.TrimSpace(endpoint) == "" {
		return
	}

	if !isValidHost(endpoint) {
		appendValidationError(errs, "settings.media.endpoint must be a host[:port] without scheme")
	}

	bucket, _ := get("settings.media.bucket").(string)
	if strings.TrimSpace(bucket) == "" {
		appendValidationError(errs, "settings.media.bucket is required when media is configured")
	}

	publicURL, _ := get("settings.media.public_url").(string)
	parsed, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		appendValidationError(errs, "settings.media.public_url must be an absolute URL")
	}
}

// validateServerConfig validates the HTTP server settings.
func validateServerConfig(get configGetter, errs *[]string) {
	hosts, ok := get("settings.server.cors_hosts").([]any)
	if !ok {
		return
	}

	for _, raw := range hosts {
		host, ok := raw.(string)
		if !ok || !isValidHost(host) {
			appendValidationError(errs,
				"settings.server.cors_hosts entry %v must be a bare hostname", raw)
		}
	}
}

// validateBootstrapConfig validates the optional first-admin bootstrap
// settings used by auto-init.
func validateBootstrapConfig(get configGetter, errs *[]string) {
	email, _ := get("settings.bootstrap.email").(string)
	if strings.TrimSpace(email) == "" {
		return
	}

	if _, err := mail.ParseAddress(email); err != nil {
		appendValidationError(errs, "settings.bootstrap.email %q is not a valid address", email)
	}
}

// isValidHost validates a host string without scheme or path components.
func isValidHost(host string) bool {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		return false
	}
	if strings.Contains(trimmed, "://") || strings.Contains(trimmed, "/") {
		return false
	}
	return true
}

// appendValidationError appends a formatted validation error to the collector.
func appendValidationError(errs *[]string, format string, args ...any) {
	if errs == nil {
		return
	}
	*errs = append(*errs, fmt.Sprintf(format, args...))
}
