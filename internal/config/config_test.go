package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "membre", cfg.Auth.DefaultTeamRole)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "pieces_jointes", cfg.Storage.AttachmentPrefix)
	assert.Equal(t, 900, cfg.Auth.TokenCacheTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_APP_PORT", "9090")
	t.Setenv("APP_STORAGE_DRIVER", "s3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "s3", cfg.Storage.Driver)
}
