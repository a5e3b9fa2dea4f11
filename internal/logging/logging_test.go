package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/config"
)

func TestNewLevels(t *testing.T) {
	log, err := New(&config.Config{Mode: "development"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log, err = New(&config.Config{Mode: "production"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log, err = New(&config.Config{Mode: "production", Log: config.LogConfig{Level: "warn"}})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	_, err = New(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log, err := New(&config.Config{
		Mode: "production",
		Log:  config.LogConfig{File: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	})
	require.NoError(t, err)

	log.WithField("params", "1:2:0").Info("game started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game started"`)
	assert.Contains(t, string(data), `"params":"1:2:0"`)
}
