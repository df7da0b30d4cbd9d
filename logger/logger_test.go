package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/awantoch/edgebridge/constants"
)

// capture sends leveled logs to a buffer at lvl for the rest of the test.
func capture(t *testing.T, lvl string) *bytes.Buffer {
	t.Helper()
	t.Setenv(constants.EnvDebug, "")
	prev := level.Level()
	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetLevel(lvl))
	t.Cleanup(func() {
		SetOutput(nil)
		level.SetLevel(prev)
	})
	return &buf
}

func TestUser(t *testing.T) {
	var buf bytes.Buffer
	SetUserOutput(&buf)
	defer SetUserOutput(nil)

	User("bound to %q", "app")
	assert.Equal(t, "bound to \"app\"\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{constants.LogLevelDebug, true, true, true, true},
		{constants.LogLevelInfo, false, true, true, true},
		{constants.LogLevelWarn, false, false, true, true},
		{constants.LogLevelError, false, false, false, true},
		{"WARN", false, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := capture(t, tt.level)
			Debug("debug line")
			Info("info line")
			Warn("warn line")
			Error("error line")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info line"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn line"))
			assert.Equal(t, tt.wantError, strings.Contains(out, "error line"))
		})
	}
}

func TestSetLevel_Invalid(t *testing.T) {
	prev := level.Level()
	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, prev, level.Level())
}

func TestSetLevel_DebugEnvWins(t *testing.T) {
	capture(t, constants.LogLevelInfo)
	t.Setenv(constants.EnvDebug, "1")

	require.NoError(t, SetLevel(constants.LogLevelError))
	assert.True(t, level.Enabled(zapcore.DebugLevel))
}

func TestInstanceIDContext(t *testing.T) {
	_, ok := InstanceIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithInstanceID(context.Background(), "abc-123")
	id, ok := InstanceIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)

	buf := capture(t, constants.LogLevelDebug)
	InfoCtx(ctx, "adapter loaded", "app", "app")
	DebugCtx(ctx, "layout resolved")
	assert.Contains(t, buf.String(), "adapter loaded")
	assert.Contains(t, buf.String(), "layout resolved")
	assert.Contains(t, buf.String(), "abc-123")
}
