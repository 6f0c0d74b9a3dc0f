package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heft-dev/heft/internal/workload"
)

const defaultRepetitions = 5

// LoadConfig loads a benchmark scenario from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//
// The document is checked against the scenario schema before decoding,
// so unknown keys and out-of-range values are reported with their
// location instead of being silently dropped.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ValidateDocument(data, path); err != nil {
		return nil, err
	}

	return ParseConfig(data, path)
}

// ParseConfig parses scenario data.
//
// The format is determined by the file extension in path, or defaults
// to YAML if the path is empty or has an unknown extension.
func ParseConfig(data []byte, path string) (*Config, error) {
	var config Config

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		// Try YAML by default
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	return &config, nil
}

// ParseDurationString parses a duration string with support for common formats.
//
// Supported formats:
//   - Standard Go duration: "30s", "2m", "500ms"
//   - Seconds as integer: "30" (treated as 30 seconds)
//
// Returns the parsed duration or an error.
func ParseDurationString(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	// Try standard Go duration parsing first
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	// Try parsing as integer seconds
	var seconds int
	if _, err := fmt.Sscanf(s, "%d", &seconds); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return 0, fmt.Errorf("invalid duration format: %s", s)
}

// ApplyDefaults applies default values to a scenario.
func ApplyDefaults(config *Config) {
	if config.Repetitions == 0 {
		config.Repetitions = defaultRepetitions
	}
	if config.Metrics == "" {
		config.Metrics = "basic"
	}
	if config.Sink == "" {
		config.Sink = "stdout"
	}

	for i := range config.Targets {
		if config.Targets[i].Name == "" {
			config.Targets[i].Name = fmt.Sprintf("target_%d", i+1)
		}
		applyWorkDefaults(config.Targets[i].Work)
	}
}

// applyWorkDefaults applies default parameters for a work target.
func applyWorkDefaults(wc *WorkConfig) {
	if wc == nil {
		return
	}

	switch wc.Kind {
	case workload.KindSleep:
		if wc.Duration == "" {
			wc.Duration = "10ms"
		}
	case workload.KindAllocate:
		if wc.Count == 0 {
			wc.Count = 1024
		}
		if wc.Size == 0 {
			wc.Size = 1024
		}
	case workload.KindChurn:
		if wc.Rounds == 0 {
			wc.Rounds = 1024
		}
		if wc.Size == 0 {
			wc.Size = 1024
		}
	}
}

// ConvertToWorkSpec converts a work configuration to a workload spec.
//
// This function bridges the config package types to the workload
// package types, parsing the duration string along the way.
func ConvertToWorkSpec(wc *WorkConfig) (workload.Spec, error) {
	spec := workload.Spec{
		Kind:   wc.Kind,
		Count:  wc.Count,
		Size:   wc.Size,
		Rounds: wc.Rounds,
	}

	if wc.Duration != "" {
		dur, err := ParseDurationString(wc.Duration)
		if err != nil {
			return workload.Spec{}, fmt.Errorf("invalid duration: %w", err)
		}
		spec.Duration = dur
	}

	return spec, nil
}
