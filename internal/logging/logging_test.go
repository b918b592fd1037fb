package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		stage string
		debug bool
	}{
		{stage: StageDev, debug: true},
		{stage: StageProd, debug: false},
	}

	for _, test := range tests {
		t.Run(test.stage, func(t *testing.T) {
			log, err := New(test.stage, filepath.Join(t.TempDir(), "game.log"))
			require.NoError(t, err)
			assert.Equal(t, test.debug, log.IsLevelEnabled(logrus.DebugLevel))
			assert.True(t, log.IsLevelEnabled(logrus.InfoLevel))
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(StageProd, path)
	require.NoError(t, err)

	log.WithField("game", "abc123").Info("game started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game started"`)
	assert.Contains(t, string(data), `"game":"abc123"`)
}
