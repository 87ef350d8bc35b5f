// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the resolved connection settings for one client
// instance. It is built once by [New] or [FromEnv] and never mutated
// afterwards.
type ClientConfig struct {
	// BaseURL is the proving-service API root, without a trailing slash.
	BaseURL string

	// APIKey is the static key sent in the x-api-key header.
	APIKey string

	// Version is the protocol version sent in the x-risc0-version header.
	Version string

	// Timeout is the per-request timeout. Zero disables the timeout.
	Timeout time.Duration
}

// settings is the mergeable intermediate form of [ClientConfig]. The timeout
// is a pointer so that merging can tell "unset" apart from a deliberately
// disabled (zero) timeout.
type settings struct {
	BaseURL string
	APIKey  string
	Version string
	Timeout *time.Duration
}

type configBuilder struct {
	layers []*settings
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*settings, 0, 2)}
}

// build merges the collected layers in priority order, earlier layers
// winning for fields they set, then validates and normalizes the result.
func (b *configBuilder) build() (*ClientConfig, error) {
	merged := new(settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if merged.BaseURL == "" {
		return nil, ErrMissingAPIURL
	}
	if merged.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL, err := normalizeBaseURL(merged.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAPIURL, err)
	}

	timeout := defaultTimeout
	if merged.Timeout != nil {
		timeout = *merged.Timeout
	}

	return &ClientConfig{
		BaseURL: baseURL,
		APIKey:  merged.APIKey,
		Version: merged.Version,
		Timeout: timeout,
	}, nil
}

func (b *configBuilder) withExplicit(baseURL, apiKey, version string) *configBuilder {
	b.layers = append(b.layers, &settings{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Version: version,
	})
	return b
}

func (b *configBuilder) withVersion(version string) *configBuilder {
	b.layers = append(b.layers, &settings{Version: version})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	b.layers = append(b.layers, parseEnv())
	return b
}

// withTimeoutEnv contributes a layer carrying only the environment-resolved
// timeout, for construction paths whose secrets must not come from the
// environment.
func (b *configBuilder) withTimeoutEnv() *configBuilder {
	timeout := resolveTimeout()
	b.layers = append(b.layers, &settings{Timeout: &timeout})
	return b
}

// New builds a ClientConfig from explicit values, layered over the
// environment-resolved timeout. The API URL and key are never probed from
// the environment on this path.
func New(baseURL, apiKey, version string) (*ClientConfig, error) {
	return newConfigBuilder().
		withExplicit(baseURL, apiKey, version).
		withTimeoutEnv().
		build()
}

// FromEnv builds a ClientConfig entirely from environment variables, probing
// the framework prefix table for the API URL and key. The caller-supplied
// version is layered over the environment settings.
func FromEnv(version string) (*ClientConfig, error) {
	return newConfigBuilder().
		withVersion(version).
		withEnv().
		build()
}

// normalizeBaseURL strips a single trailing slash and verifies the URL names
// a scheme and host.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "/")

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include scheme and host")
	}

	return raw, nil
}
