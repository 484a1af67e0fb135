package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Translate TranslateConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type GeminiConfig struct {
	ProjectID string
	Region    string
	Model     string
	Timeout   time.Duration
}

type TranslateConfig struct {
	CredentialsFile string
	Timeout         time.Duration
}

// LoadConfig loads configuration from environment variables and .env file.
// The Google Cloud project credential is mandatory: the document generator
// cannot start without its LLM provider.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("VERTEX_AI_REGION", "us-central1")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	viper.SetDefault("TRANSLATE_TIMEOUT_SECONDS", 15)

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Gemini: GeminiConfig{
			ProjectID: getEnvOrFatal("PROJECT_ID"),
			Region:    viper.GetString("VERTEX_AI_REGION"),
			Model:     viper.GetString("GEMINI_MODEL"),
			Timeout:   time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
		},
		Translate: TranslateConfig{
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			Timeout:         time.Duration(viper.GetInt("TRANSLATE_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	return cfg, nil
}

func getEnvOrFatal(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
