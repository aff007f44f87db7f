package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Set(prev) })

	require.NoError(t, Init(Config{Level: "debug", Format: "console"}))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init(Config{Level: "not-a-level", Format: "json"}))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
}

func TestWithBuildID(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	WithBuildID("abc").Info("built")
	Warn("dropped")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "built", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["build_id"])
	assert.Equal(t, "dropped", logs.All()[1].Message)
}
