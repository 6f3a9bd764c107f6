package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// RandomSeed seeds the identifier generator; a fixed seed keeps generated
	// IBANs and card numbers reproducible across runs with identical input.
	RandomSeed int64
	// RateLimit is the API rate limit in ulule/limiter format, e.g. "100-M".
	RateLimit        string
	CORSAllowOrigins []string
	// BatchInput/BatchOutput switch the binary into offline mode: read one
	// simulation request from a file, write the responses, exit.
	BatchInput  string
	BatchOutput string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RANDOM_SEED", int64(1))
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("BATCH_INPUT", "")
	viper.SetDefault("BATCH_OUTPUT", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RandomSeed = viper.GetInt64("RANDOM_SEED")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
	}

	cfg.BatchInput = viper.GetString("BATCH_INPUT")
	cfg.BatchOutput = viper.GetString("BATCH_OUTPUT")

	return cfg, nil
}
