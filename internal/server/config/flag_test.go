package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
		"-j", "HS512", "-t", "15", "-n", "2", "-m", "20",
	}

	config := &Config{}
	config.LoadDefaults()

	require.NotPanics(t, func() { parseFlags(config) })

	assert.Equal(t, "127.0.0.1:9090", config.EndpointAddr)
	assert.Equal(t, "db", config.DatabaseDSN)
	assert.Equal(t, "secret", config.SecretKey)
	assert.Equal(t, "HS512", config.JWTAlgorithm)
	assert.Equal(t, 15*time.Minute, config.AccessTokenValidityDuration)
	assert.Equal(t, 2, config.PoolMinConns)
	assert.Equal(t, 20, config.PoolMaxConns)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":8000", config.EndpointAddr)
	assert.Equal(t, 30*time.Minute, config.AccessTokenValidityDuration)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("JWT_ALGORITHM", "HS384")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("POOL_MIN_CONNS", "3")
	t.Setenv("POOL_MAX_CONNS", "30")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":9999", config.EndpointAddr)
	assert.Equal(t, "postgres://env", config.DatabaseDSN)
	assert.Equal(t, "env-secret", config.SecretKey)
	assert.Equal(t, "HS384", config.JWTAlgorithm)
	assert.Equal(t, 45*time.Minute, config.AccessTokenValidityDuration)
	assert.Equal(t, 3, config.PoolMinConns)
	assert.Equal(t, 30, config.PoolMaxConns)
}

func TestParseEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")
	t.Setenv("POOL_MAX_CONNS", "-1")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, 30*time.Minute, config.AccessTokenValidityDuration)
	assert.Equal(t, 10, config.PoolMaxConns)
}
