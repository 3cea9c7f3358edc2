// Package config collects all runtime settings from the environment once
// at startup.
package config

import "os"

// Config holds every external endpoint and secret the service needs.
type Config struct {
	ListenAddr string

	DatabaseDSN string
	RedisAddr   string

	ModelServerAddr string

	LedgerGatewayURL string

	PinURL        string
	PinGatewayURL string
	PinAPIKey     string
	PinAPISecret  string

	JWTSecret   string
	JWTAudience string
}

// Load reads the configuration from environment variables, applying
// development defaults where a value is optional.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		DatabaseDSN: getEnv("DATABASE_DSN",
			"host=postgres user=postgres password=postgres dbname=proofgate port=5432 sslmode=disable"),
		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),

		ModelServerAddr: getEnv("MODEL_SERVER_ADDR", "model-server:50051"),

		LedgerGatewayURL: getEnv("LEDGER_GATEWAY_URL", "http://ledger-gateway:8545"),

		PinURL:        getEnv("PIN_URL", "https://api.pinata.cloud/pinning/pinFileToIPFS"),
		PinGatewayURL: getEnv("PIN_GATEWAY_URL", "https://gateway.pinata.cloud"),
		PinAPIKey:     os.Getenv("PIN_API_KEY"),
		PinAPISecret:  os.Getenv("PIN_API_SECRET"),

		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
