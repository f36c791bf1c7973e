// Package main implements the pipecheck command line tool. It decodes a
// declarative pipeline configuration from YAML, runs the compatibility rule
// engine over it, and prints the resulting warnings as a text report or JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/c360/pipecheck/compat"
	"github.com/c360/pipecheck/errors"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "pipecheck"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	code, err := run()
	if err != nil {
		slog.Error("pipecheck failed", "error", err)
		os.Exit(2)
	}
	os.Exit(code)
}

func run() (int, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return 2, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return 0, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return 0, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	if cliCfg.ListRules {
		printRuleCatalog()
		return 0, nil
	}

	raw, err := loadPipelineConfig(cliCfg.ConfigPath)
	if err != nil {
		return 2, err
	}

	result := compat.CheckCompatibility(raw)

	logger.Info("compatibility check complete",
		"analysis_id", result.ID,
		"config_path", cliCfg.ConfigPath,
		"warnings", len(result.Warnings))

	if cliCfg.JSONOutput {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return 2, errors.Wrap(err, "CLI", "run", "result encoding")
		}
		fmt.Println(string(encoded))
	} else if result.Report != "" {
		fmt.Print(result.Report)
	} else {
		fmt.Println("No compatibility warnings.")
	}

	for _, w := range result.Warnings {
		if w.Severity == compat.SeverityError {
			return 1, nil
		}
	}
	return 0, nil
}

// loadPipelineConfig reads and decodes one pipeline YAML document into the
// plain map structure the engine consumes. YAML is a superset of JSON, so
// JSON documents load through the same path.
func loadPipelineConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "CLI", "loadPipelineConfig", "file read")
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapInvalid(err, "CLI", "loadPipelineConfig", "YAML decoding")
	}

	return raw, nil
}

func printRuleCatalog() {
	for _, rule := range compat.Rules() {
		fmt.Printf("%-36s %-8s %s\n", rule.ID, rule.Severity, rule.Description)
	}
}
