package config

import (
	"os"
	"strconv"
)

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// GetRedisConfig resolves the Redis connection settings. YAML values
// from the loaded config act as defaults; environment variables win.
func GetRedisConfig() RedisConfig {
	addr := "localhost:6379"
	password := ""
	db := 0
	if instance != nil {
		if instance.Redis.Addr != "" {
			addr = instance.Redis.Addr
		}
		password = instance.Redis.Password
		db = instance.Redis.DB
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsed, err := strconv.Atoi(dbStr); err == nil {
			db = parsed
		}
	}

	return RedisConfig{
		Addr:      getEnv("REDIS_ADDR", addr),
		Password:  getEnv("REDIS_PASSWORD", password),
		DB:        db,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "vitality"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
