// Package env loads configuration from the process environment,
// optionally seeded from a .env file, and constructs the tutorial's
// LLM backends.
//
// No credentials live in source. Required variables fail fast with a
// diagnostic naming every missing key.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Optional .env; the process environment stays authoritative when
	// no file is found.
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

// Check panics when key is unset, including the description in the
// diagnostic.
func Check(key string, description string) {
	if os.Getenv(key) == "" {
		panic(fmt.Sprintf("environment variable %s must not be empty: %s", key, description))
	}
}

// String returns the value of key, or defaultValue when unset.
func String(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// MustString returns the value of key, panicking when unset.
func MustString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("environment variable %s must not be empty", key))
	}
	return value
}

// Bool parses a boolean-ish variable ("true"/"True"/"TRUE" are true).
func Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}
