// Package config provides environment-sourced configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	OpenAI OpenAIConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                 int
	BindAddress          string
	BodyLimit            string
	ReadTimeoutSeconds   int
	WriteTimeoutSeconds  int
	IdleTimeoutSeconds   int
	EnableRequestLogging bool
}

// MongoConfig contains document store settings.
type MongoConfig struct {
	URL                   string
	Database              string
	ConnectTimeoutSeconds int
}

// OpenAIConfig contains remote-service credentials and model selection.
type OpenAIConfig struct {
	APIKey       string
	WhisperModel string
	SummaryModel string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8001,
			BindAddress: "0.0.0.0",
			// Above the 200 MiB upload limit so the handler check governs
			// the client-facing rejection.
			BodyLimit:            "250M",
			ReadTimeoutSeconds:   300,
			WriteTimeoutSeconds:  300,
			IdleTimeoutSeconds:   120,
			EnableRequestLogging: true,
		},
		Mongo: MongoConfig{
			URL:                   "",
			Database:              "",
			ConnectTimeoutSeconds: 10,
		},
		OpenAI: OpenAIConfig{},
	}
}

// Load builds the configuration from environment variables, reading a .env
// file first when one is present.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := Default()

	cfg.Server.Port = envInt("PORT", cfg.Server.Port)
	cfg.Server.BindAddress = envString("BIND_ADDRESS", cfg.Server.BindAddress)
	cfg.Server.BodyLimit = envString("BODY_LIMIT", cfg.Server.BodyLimit)
	cfg.Server.ReadTimeoutSeconds = envInt("READ_TIMEOUT_SECONDS", cfg.Server.ReadTimeoutSeconds)
	cfg.Server.WriteTimeoutSeconds = envInt("WRITE_TIMEOUT_SECONDS", cfg.Server.WriteTimeoutSeconds)
	cfg.Server.IdleTimeoutSeconds = envInt("IDLE_TIMEOUT_SECONDS", cfg.Server.IdleTimeoutSeconds)
	cfg.Server.EnableRequestLogging = envBool("ENABLE_REQUEST_LOGGING", cfg.Server.EnableRequestLogging)

	cfg.Mongo.URL = envString("MONGO_URL", cfg.Mongo.URL)
	cfg.Mongo.Database = envString("DB_NAME", cfg.Mongo.Database)
	cfg.Mongo.ConnectTimeoutSeconds = envInt("MONGO_CONNECT_TIMEOUT_SECONDS", cfg.Mongo.ConnectTimeoutSeconds)

	cfg.OpenAI.APIKey = envString("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.WhisperModel = envString("WHISPER_MODEL", cfg.OpenAI.WhisperModel)
	cfg.OpenAI.SummaryModel = envString("SUMMARY_MODEL", cfg.OpenAI.SummaryModel)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

func envString(key string, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
