// Package config собирает настройки сервера из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret     string
	TokenLifetime time.Duration
}

// Load читает окружение. JWT_SECRET обязателен, остальное имеет дефолты.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOr("PORT", "3001"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOr("DB_NAME", "todoapp"),
		DBSSLMode:  envOr("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set or is empty")
	}

	hours := 24
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_HOURS: %q", v)
		}
		hours = n
	}
	cfg.TokenLifetime = time.Duration(hours) * time.Hour

	return cfg, nil
}

// DSN — строка подключения к PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
