package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "forgecore", cfg.DBName)
	assert.Equal(t, "configs", cfg.ConfigDir)
}

func TestLoadPortOverride(t *testing.T) {
	t.Setenv(EnvPort, "9191")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	t.Setenv(EnvEnvironment, "the-moon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown environment")
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "forge",
	}

	assert.Equal(t, "postgres://u:p@db:5433/forge?sslmode=disable", cfg.GetDBConnString())
}
