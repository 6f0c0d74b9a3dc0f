package config

import (
	"strings"
	"testing"

	"github.com/heft-dev/heft/internal/workload"
)

func TestValidationErrorError(t *testing.T) {
	err := &ValidationError{Field: "repetitions", Message: "must be at least 1"}
	if !strings.Contains(err.Error(), "repetitions") {
		t.Errorf("Expected field in message, got %q", err.Error())
	}

	bare := &ValidationError{Message: "something failed"}
	if !strings.Contains(bare.Error(), "something failed") {
		t.Errorf("Expected message, got %q", bare.Error())
	}
}

func TestValidationErrorsCollect(t *testing.T) {
	errs := &ValidationErrors{}
	if errs.HasErrors() {
		t.Error("Expected empty collection to report no errors")
	}

	errs.Add("a", "first problem")
	errs.Add("b", "second problem")
	if !errs.HasErrors() {
		t.Error("Expected collection to report errors")
	}
	if !strings.Contains(errs.Error(), "2 validation errors") {
		t.Errorf("Expected error count in message, got %q", errs.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "valid scenario",
			config: Config{
				Repetitions: 3,
				Metrics:     "all",
				Sink:        "stdout",
				Targets: []TargetConfig{
					{Work: &WorkConfig{Kind: workload.KindSleep, Duration: "5ms"}},
					{Value: map[string]any{"a": 1}},
					{ValueFile: "payload.json"},
				},
			},
		},
		{
			name:   "empty targets select process mode",
			config: Config{Repetitions: 1},
		},
		{
			name:        "zero repetitions",
			config:      Config{Repetitions: 0},
			expectError: true,
		},
		{
			name:        "negative repetitions",
			config:      Config{Repetitions: -1},
			expectError: true,
		},
		{
			name:        "unknown metrics",
			config:      Config{Repetitions: 1, Metrics: "latency"},
			expectError: true,
		},
		{
			name:        "unknown sink",
			config:      Config{Repetitions: 1, Sink: "mail"},
			expectError: true,
		},
		{
			name: "target without source",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{Name: "empty"}},
			},
			expectError: true,
		},
		{
			name: "target with conflicting sources",
			config: Config{
				Repetitions: 1,
				Targets: []TargetConfig{
					{Work: &WorkConfig{Kind: workload.KindSleep}, Value: "x"},
				},
			},
			expectError: true,
		},
		{
			name: "unknown work kind",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{Work: &WorkConfig{Kind: "spin"}}},
			},
			expectError: true,
		},
		{
			name: "invalid work duration",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{Work: &WorkConfig{Kind: workload.KindSleep, Duration: "soon"}}},
			},
			expectError: true,
		},
		{
			name: "negative work size",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{Work: &WorkConfig{Kind: workload.KindChurn, Size: -1}}},
			},
			expectError: true,
		},
		{
			name: "path with value file",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{ValueFile: "payload.json", Path: "users.0"}},
			},
		},
		{
			name: "path without value file",
			config: Config{
				Repetitions: 1,
				Targets:     []TargetConfig{{Value: map[string]any{"a": 1}, Path: "a"}},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("Expected validation error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error but got %v", err)
			}
		})
	}
}

func TestValidateReportsField(t *testing.T) {
	cfg := Config{
		Repetitions: 1,
		Targets:     []TargetConfig{{Work: &WorkConfig{Kind: "spin"}}},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error but got none")
	}
	if !strings.Contains(err.Error(), "targets[0].work.kind") {
		t.Errorf("Expected field path in error, got %q", err.Error())
	}
}
