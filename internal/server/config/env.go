package config

import (
	"os"
	"strconv"
	"time"

	// Loads a .env file into the process environment before parseEnv reads it.
	_ "github.com/joho/godotenv/autoload"
)

// parseEnv overlays configuration from environment variables. Only variables
// that are set override the current values.
//
// Recognized variables:
//
//	ENDPOINT_ADDR                 HTTP bind address
//	DATABASE_DSN                  PostgreSQL DSN
//	POOL_MIN_CONNS                pool lower bound
//	POOL_MAX_CONNS                pool upper bound
//	SECRET_KEY                    JWT HMAC secret
//	JWT_ALGORITHM                 HMAC algorithm name
//	ACCESS_TOKEN_EXPIRE_MINUTES   access token validity, minutes
func parseEnv(config *Config) {
	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("POOL_MIN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.PoolMinConns = n
		}
	}
	if v := os.Getenv("POOL_MAX_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.PoolMaxConns = n
		}
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_ALGORITHM"); v != "" {
		config.JWTAlgorithm = v
	}
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.AccessTokenValidityDuration = time.Duration(n) * time.Minute
		}
	}
}
