package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jand6793/chat-website-backend/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. The token validity is accepted as an integer number of minutes.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr             string `json:"endpoint_addr"`
	DatabaseDSN              string `json:"database_dsn"`
	PoolMinConns             int    `json:"pool_min_conns"`
	PoolMaxConns             int    `json:"pool_max_conns"`
	SecretKey                string `json:"secret_key"`
	JWTAlgorithm             string `json:"jwt_algorithm"`
	AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. Only keys present in the file
// override the current values. A file that cannot be read or parsed panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.PoolMinConns > 0 {
		config.PoolMinConns = c.PoolMinConns
	}
	if c.PoolMaxConns > 0 {
		config.PoolMaxConns = c.PoolMaxConns
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.JWTAlgorithm != "" {
		config.JWTAlgorithm = c.JWTAlgorithm
	}
	if c.AccessTokenExpireMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenExpireMinutes) * time.Minute
	}
}
