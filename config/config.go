package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway.
type Config struct {
	Environment    string
	Port           string
	APIBaseURL     string
	PushURL        string
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file when not in production; in
// production we rely on system environment variables instead.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		APIBaseURL:  os.Getenv("CAMPUS_API_URL"),
		PushURL:     os.Getenv("CAMPUS_PUSH_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// The campus API and push server default to the local development
	// backend, which hosts both on the same port.
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:5000/api"
	}
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	if cfg.PushURL == "" {
		cfg.PushURL = "ws://localhost:5000/push"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}
