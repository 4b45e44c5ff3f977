package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingReturnsDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Read(home)
	require.NoError(t, err)
	assert.Equal(t, Default(home), cfg)
	assert.Equal(t, filepath.Join(home, ".mealweek"), cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.True(t, cfg.StartFromPlan)
}

func TestWriteAndRead(t *testing.T) {
	home := t.TempDir()
	cfg := Default(home)
	cfg.Secret = "s3cret"
	cfg.Backend = BackendSQLite

	require.NoError(t, Write(home, cfg))

	got, err := Read(home)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestReadMalformed(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(Path(home), []byte("{nope"), 0644))

	_, err := Read(home)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoadAppliesDotenvThenEnvironment(t *testing.T) {
	home := t.TempDir()
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MEALWEEK_SECRET=fromdotenv\nMEALWEEK_ADDR=:9000\n"), 0644))

	t.Setenv("MEALWEEK_ADDR", ":7000")

	cfg, err := Load(home, envFile)
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", cfg.Secret)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoadSkipsMissingDotenv(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home, filepath.Join(home, "does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSecret, cfg.Secret)
}

func TestLoadRejectsBadValues(t *testing.T) {
	home := t.TempDir()

	t.Setenv("MEALWEEK_START_FROM_PLAN", "maybe")
	_, err := Load(home)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MEALWEEK_START_FROM_PLAN")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	home := t.TempDir()

	t.Setenv("MEALWEEK_BACKEND", "postgres")
	_, err := Load(home)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestSetAndGet(t *testing.T) {
	cfg := Default(t.TempDir())

	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}

	require.NoError(t, cfg.Set("start_from_plan", "false"))
	v, err := cfg.Get("start_from_plan")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, cfg.Set("backend", " SQLite "))
	assert.Equal(t, BackendSQLite, cfg.Backend)

	assert.Error(t, cfg.Set("colour", "red"))
	_, err = cfg.Get("colour")
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", "mealweek.db"), cfg.DatabasePath())

	cfg.SQLitePath = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath())
}
