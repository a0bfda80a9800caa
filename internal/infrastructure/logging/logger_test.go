package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(Config{Level: level})
		require.NoError(t, err, level)
		assert.NotNil(t, logger.Logger)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewWritesToOutputPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "alteron.log")
	logger, err := New(Config{Level: "info", OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Info("mounted")
	_ = logger.Sync()
	assert.FileExists(t, out)
}

func TestNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := NewNop().Logger
	assert.Same(t, l, OrNop(l))
	assert.NotNil(t, Component(nil, "vfs"))
}
