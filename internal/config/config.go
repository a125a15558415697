package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	OrderLog OrderLogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// PricingConfig selects the named pricing profile (thresholds and
// handoff recipient); the profiles themselves are compiled in
type PricingConfig struct {
	Profile string
}

// OrderLogConfig locates the local order log file
type OrderLogConfig struct {
	Dir  string
	Name string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Pricing: PricingConfig{
			Profile: getEnv("PRICING_PROFILE", "classic"),
		},
		OrderLog: OrderLogConfig{
			Dir:  getEnv("ORDER_LOG_DIR", "."),
			Name: getEnv("ORDER_LOG_NAME", "biryaniOrders"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validProfiles := map[string]bool{"classic": true, "express": true}
	if !validProfiles[c.Pricing.Profile] {
		return fmt.Errorf("unknown pricing profile: %s (must be classic or express)", c.Pricing.Profile)
	}

	if c.OrderLog.Name == "" {
		return fmt.Errorf("ORDER_LOG_NAME is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
