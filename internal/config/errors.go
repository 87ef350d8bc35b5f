package config

import "errors"

// Resolution errors returned by [New] and [FromEnv] when the connection
// settings are incomplete or invalid.
var (
	// ErrMissingAPIURL indicates that no API URL was supplied explicitly
	// and no variant of BONSAI_API_URL is set in the environment.
	ErrMissingAPIURL = errors.New("missing API URL")

	// ErrMissingAPIKey indicates that no API key was supplied explicitly
	// and no variant of BONSAI_API_KEY is set in the environment.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidAPIURL indicates that the API URL could not be parsed or
	// lacks a scheme or host.
	ErrInvalidAPIURL = errors.New("invalid API URL")
)
