package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sutticue/flashcard-game/internal/config"
)

func TestNewForTUI_NoFileDiscards(t *testing.T) {
	log, err := NewForTUI(config.Log{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordquiz.log")
	log, err := New(config.Log{Level: "info", File: path, Env: "production"})
	require.NoError(t, err)

	log.Info("round complete")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "round complete"))
}

func TestNew_Level(t *testing.T) {
	log, err := New(config.Log{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = New(config.Log{Level: "loud"})
	assert.Error(t, err)
}
