package util

import "os"

// Env returns the value of an environment variable, falling back when the
// variable is unset or empty.
func Env(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
