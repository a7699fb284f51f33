package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DatabasePath  string
	UploadDir     string
	AdminUsername string
	AdminPassword string
	SessionSecret string
	SessionTTL    int // hours
	RedisAddr     string
	RedisDB       int
	RedisPass     string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is honored when present.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, reading from system environment")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "db/travel_agency.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/images"),
		AdminUsername: getEnv("ADMIN_USERNAME", "default_username"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "default_password"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:    getEnvInt("SESSION_TTL_HOURS", 24),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
	}
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
