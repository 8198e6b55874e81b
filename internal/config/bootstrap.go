package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read at startup
const (
	EnvAPIBaseURL     = "FLORAVERDE_API_URL"
	EnvLanguage       = "FLORAVERDE_LANGUAGE"
	EnvRequestTimeout = "FLORAVERDE_TIMEOUT"
	EnvOpenLocation   = "FLORAVERDE_OPEN"
)

// Bootstrap holds startup configuration: built-in defaults, overridden by the
// YAML file, overridden by .env and process environment.
type Bootstrap struct {
	APIBaseURL     string        `yaml:"api_base_url"`
	Language       string        `yaml:"language"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	OpenLocation   string        `yaml:"open"`
}

// DefaultBootstrap returns the built-in defaults
func DefaultBootstrap() Bootstrap {
	return Bootstrap{
		APIBaseURL:     DefaultAPIBaseURL,
		Language:       DefaultLanguage,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// LoadBootstrap reads the YAML file at configPath and the dotenv file at
// envPath. Missing files are not an error; either path may be empty.
func LoadBootstrap(configPath, envPath string) (Bootstrap, error) {
	b := DefaultBootstrap()

	if configPath != "" {
		if err := b.mergeFile(configPath); err != nil {
			return DefaultBootstrap(), err
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		values, err := godotenv.Read(envPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return DefaultBootstrap(), fmt.Errorf("failed to read env file %s: %w", envPath, err)
		}
		if values != nil {
			dotenv = values
		}
	}

	// Process environment wins over .env, same as godotenv.Load
	err := b.applyEnv(func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	})
	if err != nil {
		return DefaultBootstrap(), err
	}

	return b.normalized(), nil
}

func (b *Bootstrap) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fromFile Bootstrap
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fromFile.APIBaseURL != "" {
		b.APIBaseURL = fromFile.APIBaseURL
	}
	if fromFile.Language != "" {
		b.Language = fromFile.Language
	}
	if fromFile.RequestTimeout > 0 {
		b.RequestTimeout = fromFile.RequestTimeout
	}
	if fromFile.OpenLocation != "" {
		b.OpenLocation = fromFile.OpenLocation
	}
	return nil
}

func (b *Bootstrap) applyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvAPIBaseURL); ok && value != "" {
		b.APIBaseURL = value
	}
	if value, ok := lookup(EnvLanguage); ok && value != "" {
		b.Language = value
	}
	if value, ok := lookup(EnvOpenLocation); ok && value != "" {
		b.OpenLocation = value
	}
	if value, ok := lookup(EnvRequestTimeout); ok && value != "" {
		timeout, err := parseTimeout(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err)
		}
		b.RequestTimeout = timeout
	}
	return nil
}

// parseTimeout accepts Go durations ("15s") and bare seconds ("15")
func parseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("timeout must be positive: %d", seconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("timeout must be positive: %s", value)
	}
	return timeout, nil
}

func (b Bootstrap) normalized() Bootstrap {
	b.APIBaseURL = strings.TrimRight(strings.TrimSpace(b.APIBaseURL), "/")
	if b.APIBaseURL == "" {
		b.APIBaseURL = DefaultAPIBaseURL
	}
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	if b.RequestTimeout <= 0 {
		b.RequestTimeout = DefaultRequestTimeout
	}
	return b
}
