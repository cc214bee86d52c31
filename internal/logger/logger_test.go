package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_WritesRoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "sync-client")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "sync-client", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNew_CallerFieldIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller")

	l.Info().Msg("where")

	entry := decodeEntry(t, &buf)
	caller, ok := entry["func"].(string)
	require.True(t, ok, "expected 'func' field in log entry")
	assert.Contains(t, caller, "TestNew_CallerFieldIsFunctionName")
}

func TestNew_GlobalLevelIsDebug(t *testing.T) {
	New(&bytes.Buffer{}, "level")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotLeakFieldsToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "parent")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("session", "abc").Logger()

	parent.Info().Msg("from parent")
	entry := decodeEntry(t, &buf)
	_, has := entry["session"]
	assert.False(t, has)
}

func TestWithContext_FromContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ctx-role")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromContext_EmptyContextIsSafe(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nobody listens") })
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "req-role")

	r := httptest.NewRequest("GET", "/health", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-role", entry["role"])
}
