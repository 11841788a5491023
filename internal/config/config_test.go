package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "production", cfg.Environment)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=masjid_directory")
	assert.Contains(t, cfg.DatabaseDSN, "sslmode=disable")
}

func TestLoadNormalizesSemicolonConnectionString(t *testing.T) {
	t.Setenv("DATABASE_DSN", "Host=db;Port=5433;Database=directory;Username=app;Password=secret;Timeout=10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5433 dbname=directory user=app password=secret connect_timeout=10 sslmode=disable", cfg.DatabaseDSN)
}

func TestLoadKeepsURLConnectionString(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://app:secret@db:5432/directory?sslmode=require")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:secret@db:5432/directory?sslmode=require", cfg.DatabaseDSN)
}

func TestNormalizeKeepsExplicitSSLMode(t *testing.T) {
	got := normalizeConnectionString("Host=db;Database=x;SSLMode=require")

	assert.Equal(t, "host=db dbname=x sslmode=require", got)
}
