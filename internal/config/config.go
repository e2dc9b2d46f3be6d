package config

import (
	"os"
	"strconv"
)

// Profile names selectable through APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env          string
	ServerPort   string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	PostsPerPage int
	SwaggerHost  string
}

// Load builds Config for the profile named by APP_ENV, with sensible defaults.
func Load() *Config {
	env := getEnv("APP_ENV", EnvDevelopment)
	return &Config{
		Env:          env,
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		MySQLDSN:     getEnv("MYSQL_DSN", defaultDSN(env)),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		PostsPerPage: getEnvInt("POSTS_PER_PAGE", 20),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

// IsTesting reports whether the testing profile is active.
func (c *Config) IsTesting() bool {
	return c.Env == EnvTesting
}

func defaultDSN(env string) string {
	dbName := "blog"
	if env == EnvTesting {
		dbName = "blog_test"
	}
	return "user:password@tcp(localhost:3306)/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
