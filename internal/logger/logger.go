// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the bonsai-go SDK and its CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Library code never constructs its own logger: the client accepts one via
// an option and falls back to [Nop] so that SDK consumers stay silent by
// default.
package logger

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// SDK to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "bonsai-cli").
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a "ts" timestamp field on every entry;
//   - a "func" caller field recording the fully-qualified function name.
//
// Output is written to os.Stderr in JSON format, keeping stdout free for
// artifact output such as downloaded receipts.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stderr).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. It is the default
// logger of a client constructed without an explicit one, and is also used
// in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child *Logger that inherits all fields of the
// receiver plus one additional string field, typically a job identifier.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}
