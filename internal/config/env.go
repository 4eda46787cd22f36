// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is not set or empty.
func GetEnvInt(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(GetEnv(key, ""))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q: %w", key, value, err)
	}
	return n, nil
}

// GetEnvBool returns the boolean value of the environment variable named by
// the key, or fallback if the variable is not set or empty.
func GetEnvBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(GetEnv(key, ""))
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q: %w", key, value, err)
	}
	return b, nil
}
