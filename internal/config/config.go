package config

import (
	"log/slog"
	"os"
	"strconv"
)

const defaultSecretKey = "your-secret-key-here-change-in-production"

type Config struct {
	Port      string
	Env       string
	SecretKey string

	MySQLHost     string
	MySQLUser     string
	MySQLPassword string
	MySQLDatabase string
	MySQLPort     int
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		SecretKey: getEnv("SECRET_KEY", defaultSecretKey),

		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLUser:     getEnv("MYSQL_USER", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", "root"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "zenathia_db"),
		MySQLPort:     getEnvInt("MYSQL_PORT", 3306),
	}

	if cfg.Env == "production" && cfg.SecretKey == defaultSecretKey {
		slog.Error("SECRET_KEY must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
