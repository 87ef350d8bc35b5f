// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

package bonsai

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/zkworks/bonsai-go/internal/config"
	"github.com/zkworks/bonsai-go/internal/logger"
)

// Fixed headers attached to every API request.
const (
	headerAPIKey  = "x-api-key"
	headerVersion = "x-risc0-version"
)

// Client talks to the Bonsai proving service. It holds no mutable state
// beyond the immutable configuration and the underlying HTTP connection
// pools, so a single instance is safe for concurrent use.
type Client struct {
	// api issues authenticated requests against the service base URL.
	api *resty.Client

	// transfer issues requests against absolute presigned URLs. It is a
	// separate client so the API headers never leak to foreign hosts.
	transfer *resty.Client

	cfg     *config.ClientConfig
	decoder ReceiptDecoder
	logger  *logger.Logger
}

// Option customises a Client during construction.
type Option func(*Client)

// WithLogger attaches a logger to the client. Without it the client logs
// nothing.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDecoder attaches the receipt decoder used by
// [Client.ExtractSealAndJournal]. Without it that method fails with
// [ErrConfiguration].
func WithDecoder(d ReceiptDecoder) Option {
	return func(c *Client) { c.decoder = d }
}

// New constructs a Client from explicit connection settings. The base URL is
// normalised (one trailing slash stripped); the request timeout is resolved
// from BONSAI_TIMEOUT_MS as described in the package config docs. Returns an
// error wrapping [ErrConfiguration] if the settings are incomplete or the
// URL is malformed.
func New(baseURL, apiKey, version string, opts ...Option) (*Client, error) {
	cfg, err := config.New(baseURL, apiKey, version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return newClient(cfg, opts...), nil
}

// NewFromEnv constructs a Client from environment variables. The API URL and
// key are probed through the framework prefix table (REACT_APP_,
// NEXT_PUBLIC_, GATSBY_, VUE_APP_, VITE_, PUBLIC_, NUXT_ENV_, then bare
// BONSAI_API_URL / BONSAI_API_KEY). Returns an error wrapping
// [ErrConfiguration] when no variant of a required variable is set.
func NewFromEnv(version string, opts ...Option) (*Client, error) {
	cfg, err := config.FromEnv(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return newClient(cfg, opts...), nil
}

func newClient(cfg *config.ClientConfig, opts ...Option) *Client {
	api := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader(headerAPIKey, cfg.APIKey).
		SetHeader(headerVersion, cfg.Version)

	transfer := resty.New().SetTimeout(cfg.Timeout)

	c := &Client{
		api:      api,
		transfer: transfer,
		cfg:      cfg,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised service URL the client was built with.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}
