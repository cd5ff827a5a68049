package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Tavily  TavilyConfig
	Gemini  GeminiConfig
	Groq    GroqConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr string
}

type TavilyConfig struct {
	APIKey     string
	MaxResults int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GroqConfig struct {
	APIKey string
	Model  string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Tavily: TavilyConfig{
			APIKey:     getEnv("TAVILY_API_KEY", ""),
			MaxResults: getEnvInt("TAVILY_MAX_RESULTS", 3),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Groq: GroqConfig{
			APIKey: getEnv("GROQ_API_KEY", ""),
			Model:  getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks server-level settings only. API keys are deliberately not
// validated here: a missing credential surfaces as a ConfigError when the
// corresponding backend is first called.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	if c.Tavily.MaxResults <= 0 {
		return fmt.Errorf("TAVILY_MAX_RESULTS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
