package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the CLI needs. One instance is built per
// process and handed to constructors explicitly; there are no ambient
// globals.
type Config struct {
	Kraken struct {
		APIKey    string
		APISecret string
	}

	LogFile string
	Timeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Kraken.APIKey = getEnv("KRAKEN_API_KEY", "")
	cfg.Kraken.APISecret = getEnv("KRAKEN_API_SECRET", "")
	cfg.LogFile = getEnv("CB_LOG_FILE", "/tmp/cryptoengine.log")
	cfg.Timeout = getEnvDuration("CB_HTTP_TIMEOUT", 4*time.Second)
	return cfg
}

// CredentialsError reports missing exchange credentials. It is fatal at
// startup for authenticated commands; nothing is retried.
type CredentialsError struct {
	Missing []string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("missing exchange credentials: %s", strings.Join(e.Missing, ", "))
}

// ValidateCredentials checks that both API key and secret are present.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.Kraken.APIKey == "" {
		missing = append(missing, "KRAKEN_API_KEY")
	}
	if c.Kraken.APISecret == "" {
		missing = append(missing, "KRAKEN_API_SECRET")
	}
	if len(missing) > 0 {
		return &CredentialsError{Missing: missing}
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
