package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SessionSecret string
	DBDSN         string
}

const defaultPort = "8080"

// Load reads the environment (optionally seeded from a .env file) and
// refuses to start without the database DSN and the session secret.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBDSN:         os.Getenv("DB_DSN"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("missing required env DB_DSN")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("missing required env SESSION_SECRET")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultPort
	}

	return cfg
}
