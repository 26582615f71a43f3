package config

import (
	"os"
)

type Config struct {
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GinMode    string
	Port       string
	UploadDir  string
}

func Load() *Config {
	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "jobboard.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "jobboard"),
		DBPassword: getEnv("DB_PASSWORD", "jobboard"),
		DBName:     getEnv("DB_NAME", "jobboard"),
		// No default: a missing signing secret is a fatal configuration error.
		JWTSecret: os.Getenv("JWT_SECRET"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		Port:      getEnv("PORT", "8080"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
