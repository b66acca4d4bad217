// Package config loads the settings of the idioms CLI from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Output formats understood by the describe command.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the CLI settings. Flags override these.
type Config struct {
	// Seed fixes the random source; 0 seeds from the clock.
	Seed     int64
	LogLevel string
	Output   string
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{Seed: 0, LogLevel: "info", Output: OutputText}
}

// LoadFromEnv reads IDIOMS_SEED, IDIOMS_LOG_LEVEL and IDIOMS_OUTPUT.
//
// Only the seed is checked here. Level and output may still be replaced by
// flags, so call Validate once those are applied.
func LoadFromEnv() (Config, error) {
	def := Default()
	seed, err := getenvInt64("IDIOMS_SEED", def.Seed)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Seed:     seed,
		LogLevel: getenv("IDIOMS_LOG_LEVEL", def.LogLevel),
		Output:   getenv("IDIOMS_OUTPUT", def.Output),
	}
	return cfg.Normalize(), nil
}

// Normalize lowercases the log level and output format.
func (c Config) Normalize() Config {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Output = strings.ToLower(c.Output)
	return c
}

// Validate checks the log level and output format.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log level", c.LogLevel)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return invalid("output", c.Output)
	}
	return nil
}

// ValueError reports which setting was rejected.
type ValueError struct {
	Key   string
	Value string
}

// Error implements the error interface.
func (e ValueError) Error() string {
	// Example: config: invalid value for IDIOMS_OUTPUT: "xml"
	return ErrInvalid.Error() + " for " + e.Key + ": " + strconv.Quote(e.Value)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e ValueError) Unwrap() error { return ErrInvalid }

func invalid(key, val string) error { return ValueError{Key: key, Value: val} }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt64(k string, def int64) (int64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, invalid(k, v)
	}
	return n, nil
}
