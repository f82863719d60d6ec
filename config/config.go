// Package config provides configuration management for the Solitude application.
// It handles loading and validation of configuration values from environment
// variables, with support for default values and collective error reporting.
// This allows the application to be configured for different environments
// without code changes; a `.env` file can supply the variables in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageConfig holds settings for the local persistence layer.
// Every store writes its state as a named blob under DataDir.
type StorageConfig struct {
	DataDir string // Directory holding the persisted JSON blobs
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// SimulatedLatency is the artificial delay applied to login and
	// registration, standing in for a network round trip. The UI layer is
	// expected to show a busy state for its duration.
	SimulatedLatency time.Duration
}

// CheckoutConfig holds checkout-related configuration.
type CheckoutConfig struct {
	// ProcessingDelay is the artificial delay applied to order submission,
	// simulating payment processing.
	ProcessingDelay time.Duration
}

// NotifyConfig holds settings for the notification surface.
type NotifyConfig struct {
	// BufferSize is the per-subscriber channel capacity of the notification
	// broadcaster. A subscriber that falls further behind than this loses
	// messages rather than blocking the emitting store.
	BufferSize int
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Storage  *StorageConfig
	Auth     *AuthConfig
	Checkout *CheckoutConfig
	Notify   *NotifyConfig
}

// Helper function to get an optional environment variable with a default string value.
// Provides sensible defaults if an optional configuration is not explicitly set.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as time.Duration.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
// `time.ParseDuration` expects a string like "500ms", "2s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist, so a misconfigured
// environment is reported in one shot rather than one variable at a time.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Storage configuration.
	// The default keeps all persisted blobs in a hidden directory under the
	// user's home, so state survives across runs the way browser-local
	// storage survives across sessions.
	dataDir := getOptionalEnv("SOLITUDE_DATA_DIR", defaultDataDir())
	storageConfig := &StorageConfig{
		DataDir: dataDir,
	}

	// Auth configuration.
	simulatedLatency := getOptionalEnvDuration("SOLITUDE_SIMULATED_LATENCY", 500*time.Millisecond, &errors)
	authConfig := &AuthConfig{
		SimulatedLatency: simulatedLatency,
	}

	// Checkout configuration.
	processingDelay := getOptionalEnvDuration("SOLITUDE_CHECKOUT_DELAY", 2*time.Second, &errors)
	checkoutConfig := &CheckoutConfig{
		ProcessingDelay: processingDelay,
	}

	// Notification configuration.
	notifyBuffer := getOptionalEnvInt("SOLITUDE_NOTIFY_BUFFER", 32, &errors)
	notifyConfig := &NotifyConfig{
		BufferSize: notifyBuffer,
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	// Return the fully populated AppConfig.
	return &AppConfig{
		Storage:  storageConfig,
		Auth:     authConfig,
		Checkout: checkoutConfig,
		Notify:   notifyConfig,
	}, nil
}

// defaultDataDir resolves the fallback location for persisted state.
// Falls back to the working directory when the home directory is unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".solitude"
	}
	return home + string(os.PathSeparator) + ".solitude"
}
