package utils

import (
	"time"
)

// DatabaseConfig holds the MongoDB connection settings.
type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	RetryWrites     bool
}

// LoadDatabaseConfig reads the MongoDB settings from the environment
// with local-development defaults.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             GetEnvAsString("MONGODB_URI", "mongodb://localhost:27017/noteful"),
		DatabaseName:    GetEnvAsString("MONGO_DB", "noteful"),
		MaxPoolSize:     GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		RetryWrites:     GetEnvAsString("MONGO_RETRY_WRITES", "true") == "true",
	}
}
