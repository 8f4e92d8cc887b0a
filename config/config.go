package config

import "time"

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	SymmetricKey string
	TokenExpiry  time.Duration
}

// GetSymmetricKey returns the token encryption key from the config
func (c *AppConfig) GetSymmetricKey() []byte {
	return []byte(c.SymmetricKey)
}

// GetTokenExpiry returns the access token lifetime from the config
func (c *AppConfig) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}
