package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, 10, c.Mines)
	assert.True(t, c.ClearScreen)
	assert.Equal(t, BackendSQLite, c.Records.Backend)
	assert.NotEmpty(t, c.Records.SQLitePath)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_HEIGHT", "16")
	t.Setenv("MINES_MINES", "99")
	t.Setenv("MINES_RECORDS_BACKEND", "none")
	t.Setenv("MINES_LOG_FILE", "/tmp/mines.log")

	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 30, c.Width)
	assert.Equal(t, 16, c.Height)
	assert.Equal(t, 99, c.Mines)
	assert.Equal(t, BackendNone, c.Records.Backend)
	assert.Equal(t, "/tmp/mines.log", c.Log.File)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	err := os.WriteFile(path, []byte(
		"width: 9\nheight: 9\nmines: 10\ncolor: false\nrecords:\n  backend: postgres\n",
	), 0o600)
	require.NoError(t, err)

	c, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9, c.Width)
	assert.False(t, c.Color)
	assert.Equal(t, BackendPostgres, c.Records.Backend)
}

func TestLoadBadBackend(t *testing.T) {
	t.Setenv("MINES_RECORDS_BACKEND", "redis")
	_, err := Load(New(), "")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
