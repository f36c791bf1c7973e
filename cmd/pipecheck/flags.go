package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	JSONOutput  bool
	ListRules   bool
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("PIPECHECK_CONFIG", ""),
		"Path to pipeline configuration file (env: PIPECHECK_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("PIPECHECK_CONFIG", ""),
		"Path to pipeline configuration file (env: PIPECHECK_CONFIG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("PIPECHECK_LOG_LEVEL", "warn"),
		"Log level: debug, info, warn, error (env: PIPECHECK_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("PIPECHECK_LOG_FORMAT", "text"),
		"Log format: json, text (env: PIPECHECK_LOG_FORMAT)")

	flag.BoolVar(&cfg.JSONOutput, "json",
		getEnvBool("PIPECHECK_JSON", false),
		"Emit the analysis result as JSON instead of a text report (env: PIPECHECK_JSON)")

	flag.BoolVar(&cfg.ListRules, "list-rules", false, "List the compatibility rule catalog and exit")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp || cfg.ListRules {
		return nil
	}

	if cfg.ConfigPath == "" {
		return fmt.Errorf("no pipeline configuration given, use -config")
	}

	// Validate config file exists
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		return fmt.Errorf("pipeline configuration not found: %s", cfg.ConfigPath)
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Pipeline compatibility checker

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Check a pipeline and print the report
  %s --config pipeline.yaml

  # Emit warnings as JSON for another tool to consume
  %s --config pipeline.yaml --json

  # Inspect the rule catalog
  %s --list-rules

Exit codes:
  0  no error-severity warnings
  1  at least one error-severity warning
  2  the checker itself failed (unreadable or undecodable input)

Version: %s
`, os.Args[0], os.Args[0], os.Args[0], Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
