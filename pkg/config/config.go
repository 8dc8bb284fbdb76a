// LingoTeach - language-teaching voice skill backend
// License: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Translator backends.
const (
	TranslatorAWS    = "aws"
	TranslatorOpenAI = "openai"
)

// Preference store backends.
const (
	PrefsDynamoDB = "dynamodb"
	PrefsSQLite   = "sqlite"
	PrefsMemory   = "memory"
)

type Config struct {
	// Bucket holds the synthesized audio objects, one per device.
	Bucket string `env:"BUCKET"`
	// PicsBucket holds the static card images.
	PicsBucket string `env:"BUCKET_PICS"`
	// Table is the DynamoDB table for persisted language preferences.
	Table string `env:"TABLE"`

	Region string `env:"AWS_REGION" envDefault:"us-east-1"`

	Translator string `env:"TRANSLATOR" envDefault:"aws"`
	Prefs      string `env:"PREFS_BACKEND" envDefault:"dynamodb"`
	SQLitePath string `env:"PREFS_SQLITE_PATH" envDefault:"lingoteach.db"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	ListenAddr        string `env:"LISTEN_ADDR" envDefault:":8080"`
	RequestsPerMinute int    `env:"REQUESTS_PER_MINUTE" envDefault:"60"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every selected backend has the settings it needs.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("BUCKET is required")
	}
	switch c.Translator {
	case TranslatorAWS:
	case TranslatorOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai translator")
		}
	default:
		return fmt.Errorf("unknown translator backend %q", c.Translator)
	}
	switch c.Prefs {
	case PrefsDynamoDB:
		if c.Table == "" {
			return fmt.Errorf("TABLE is required for the dynamodb preference store")
		}
	case PrefsSQLite, PrefsMemory:
	default:
		return fmt.Errorf("unknown preference store backend %q", c.Prefs)
	}
	return nil
}

// CardSmallURL returns the small card image URL served from the picture bucket.
func (c *Config) CardSmallURL() string {
	return fmt.Sprintf("https://s3.amazonaws.com/%s/language/globe_small.png", c.PicsBucket)
}

// CardLargeURL returns the large card image URL served from the picture bucket.
func (c *Config) CardLargeURL() string {
	return fmt.Sprintf("https://s3.amazonaws.com/%s/language/globe_big.png", c.PicsBucket)
}
