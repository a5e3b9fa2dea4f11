package config

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", c.Mode)
	assert.True(t, c.Development())
	assert.False(t, c.Production())
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.Equal(t, 100, c.MaxRows)
	assert.Equal(t, 100, c.MaxCols)

	params, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultParams, params)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"mode": "production",
		"addr": ":9000",
		"default_params": "16:30:99",
		"max_rows": 20,
		"log": {"file": "/tmp/mines.log", "max_age": 7}
	}`), 0o600))

	t.Setenv("MINES_ADDR", ":9100")
	t.Setenv("MINES_LOG_MAX_BACKUPS", "9")

	c, err := Load(path)
	require.NoError(t, err)

	assert.True(t, c.Production())
	assert.Equal(t, ":9100", c.Addr)
	assert.Equal(t, "/tmp/mines.log", c.Log.File)
	assert.Equal(t, 7, c.Log.MaxAge)
	assert.Equal(t, 9, c.Log.MaxBackups)
	assert.Equal(t, 20, c.MaxRows)
	assert.Equal(t, 100, c.MaxCols)

	params, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Rows: 16, Cols: 30, MineCount: 99}, params)
	assert.Equal(t, "16:30:99", c.Fields()["default_params"])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	t.Setenv("MINES_DEFAULT_PARAMS", "2:2:9")
	_, err = Load("")
	assert.ErrorIs(t, err, mines.ErrInvalidParams)

	t.Setenv("MINES_DEFAULT_PARAMS", "40:40:10")
	t.Setenv("MINES_MAX_ROWS", "30")
	_, err = Load("")
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestWebSocketCheckOrigin(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Origin", "http://evil.example")

	assert.True(t, NewWebSocket(nil).Upgrader.CheckOrigin(r))

	ws := NewWebSocket([]string{"http://mines.example"})
	assert.False(t, ws.Upgrader.CheckOrigin(r))
	r.Header.Set("Origin", "http://mines.example")
	assert.True(t, ws.Upgrader.CheckOrigin(r))
}
