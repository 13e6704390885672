// Package config provides configuration management for the bookshop application.
// It handles loading and validation of configuration values from environment
// variables, with support for default values and collective error reporting.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// defaultSigningSecret matches the literal the upstream service shipped with,
// so tokens issued by an unconfigured deployment stay verifiable by existing
// clients. Set SESSION_SIGNING_SECRET to rotate it.
const defaultSigningSecret = "fingerprint_customer"

// AuthConfig holds session-token related configuration.
type AuthConfig struct {
	SigningSecret string        // Secret key for signing session tokens
	TokenTTL      time.Duration // Validity window of an issued token
	CookieName    string        // Name of the session cookie carrying the token
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Auth   *AuthConfig
	Server *ServerConfig
}

// getOptionalEnv returns the value of an environment variable, or the
// default when it is not set.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvDuration parses an environment variable as a time.Duration.
// Uses defaultValue if not set; appends an error and falls back to the
// default if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	authConfig := &AuthConfig{
		SigningSecret: getOptionalEnv("SESSION_SIGNING_SECRET", defaultSigningSecret),
		TokenTTL:      getOptionalEnvDuration("SESSION_TOKEN_TTL", time.Hour, &errors),
		CookieName:    getOptionalEnv("SESSION_COOKIE_NAME", "bookshop-session"),
	}
	if authConfig.SigningSecret == "" {
		errors = append(errors, "SESSION_SIGNING_SECRET must not be empty")
	}
	if authConfig.TokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TOKEN_TTL must be positive, got %s", authConfig.TokenTTL))
	}

	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
