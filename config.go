package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, loaded from the environment with
// a .env file fallback.
type Config struct {
	Port             string
	Env              string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	PostgresTimeZone string
	RedisAddr        string
	RedisPassword    string
	KafkaBrokers     []string
	OrderEventsTopic string
	LockTimeout      string
	JWTSecret        string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "order.events"),
		LockTimeout:      getEnv("DB_LOCK_TIMEOUT", "3s"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
