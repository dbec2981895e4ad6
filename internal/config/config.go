package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port                string
	AllowedOrigin       string
	AppName             string
	DataDir             string
	DatabaseURL         string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

func Load() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	ttl, err := strconv.Atoi(getEnv("DASHBOARD_TTL_SECONDS", "20"))
	if err != nil || ttl < 1 {
		ttl = 20
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "http://127.0.0.1:3000"),
		AppName:             getEnv("APP_NAME", "Sales Tracker"),
		DataDir:             getEnv("DATA_DIR", "data"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
		DashboardTTLSeconds: ttl,
	}
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
