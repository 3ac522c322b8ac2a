package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordcast.log")
	logger, err := New("debug", path)
	require.NoError(t, err)

	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud", "")
	assert.Error(t, err)
}

func TestForScreenWithoutFileIsSilent(t *testing.T) {
	logger, err := ForScreen("info", "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
