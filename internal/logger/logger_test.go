package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the Nop logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should vanish")

	assert.Zero(t, buf.Len())
}

// TestWithField verifies that a child logger carries the added field and the
// parent stays untouched.
func TestWithField(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.WithField("session", "abc-123")
	child.Logger = child.Output(&childBuf)

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	var childEntry map[string]any
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))
	assert.Equal(t, "abc-123", childEntry["session"])

	var parentEntry map[string]any
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))
	assert.NotContains(t, parentEntry, "session")
}
