// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"orderstat-btree/pkg/logger"
)

// Config holds the application configuration.
type Config struct {
	TreeDegree int          // Default minimum degree for the shell
	LogLevel   logger.Level // Logging level (debug, info, warn, error)
	OutputPath string       // Path of the command result file
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// Default values
	cfg := &Config{
		TreeDegree: 3,
		LogLevel:   logger.Info,
		OutputPath: "output.txt",
	}

	// Load TreeDegree from environment
	if degreeStr := os.Getenv("TREE_DEGREE"); degreeStr != "" {
		degree, err := strconv.Atoi(degreeStr)
		if err != nil || degree < 2 {
			return nil, fmt.Errorf("invalid TREE_DEGREE: %s (must be >= 2)", degreeStr)
		}
		cfg.TreeDegree = degree
	}

	// Load LogLevel from environment
	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		logLevel, err := logger.ParseLevel(logLevelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %s", logLevelStr)
		}
		cfg.LogLevel = logLevel
	}

	// Load OutputPath from environment
	if outputPath := os.Getenv("OUTPUT_PATH"); outputPath != "" {
		cfg.OutputPath = outputPath
	}

	return cfg, nil
}
