// Package config resolves the connection configuration for the Bonsai
// proving-service client.
//
// Configuration is assembled from up to two sources in the following
// priority order (earlier sources win for fields they set):
//  1. Explicit values passed by the caller
//  2. Environment variables, probed through the framework prefix table
//
// The request timeout is always resolved from the environment via
// BONSAI_TIMEOUT_MS, regardless of which source supplied the URL and key.
// The main entry points are [New] for explicit configuration and [FromEnv]
// for environment-only configuration.
package config
