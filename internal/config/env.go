// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Canonical environment variable names. URL and key are additionally probed
// with every prefix in envPrefixes; the timeout variable is read bare.
const (
	envAPIURL  = "BONSAI_API_URL"
	envAPIKey  = "BONSAI_API_KEY"
	envTimeout = "BONSAI_TIMEOUT_MS"

	// noTimeout is the literal BONSAI_TIMEOUT_MS value that disables the
	// per-request timeout entirely.
	noTimeout = "none"
)

// defaultTimeout applies when BONSAI_TIMEOUT_MS is unset or unparseable.
const defaultTimeout = 30 * time.Second

// envPrefixes is the ordered probe table of frontend-framework environment
// prefixes. The first prefix whose variable is set wins outright; an empty
// value still counts as set. The empty prefix at the end matches the bare
// canonical name.
var envPrefixes = []string{
	"REACT_APP_",
	"NEXT_PUBLIC_",
	"GATSBY_",
	"VUE_APP_",
	"VITE_",
	"PUBLIC_",
	"NUXT_ENV_",
	"",
}

// lookupPrefixed walks the prefix table for suffix and returns the value of
// the first variable that is set in the process environment.
func lookupPrefixed(suffix string) (string, bool) {
	for _, prefix := range envPrefixes {
		if value, ok := os.LookupEnv(prefix + suffix); ok {
			return value, true
		}
	}
	return "", false
}

// parseEnv collects the environment-supplied settings layer: API URL and key
// via the prefix table, timeout via the resolution rule.
func parseEnv() *settings {
	cfg := new(settings)
	if value, ok := lookupPrefixed(envAPIURL); ok {
		cfg.BaseURL = value
	}
	if value, ok := lookupPrefixed(envAPIKey); ok {
		cfg.APIKey = value
	}

	timeout := resolveTimeout()
	cfg.Timeout = &timeout
	return cfg
}

// timeoutEnv binds the raw timeout variable via the caarlos0/env library.
// The value is kept as a string because the resolution rule treats the
// literal "none" and unparseable values specially.
type timeoutEnv struct {
	RawMS string `env:"BONSAI_TIMEOUT_MS"`
}

// resolveTimeout applies the timeout-resolution rule: "none" disables the
// timeout, an integer is taken as milliseconds, and anything else (including
// an unset variable) falls back to defaultTimeout.
func resolveTimeout() time.Duration {
	var te timeoutEnv
	if err := env.Parse(&te); err != nil {
		return defaultTimeout
	}

	if te.RawMS == noTimeout {
		return 0
	}

	ms, err := strconv.Atoi(te.RawMS)
	if err != nil {
		return defaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}
