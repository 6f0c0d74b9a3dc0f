package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heft-dev/heft/internal/workload"
)

func TestLoadConfigYAML(t *testing.T) {
	content := `
name: demo
label: demo run
repetitions: 3
metrics: all
sink: debug
targets:
  - name: nap
    work:
      kind: sleep
      duration: 5ms
  - name: payload
    value:
      a: 1
      b: 2
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Expected name %q but got %q", "demo", cfg.Name)
	}
	if cfg.Repetitions != 3 {
		t.Errorf("Expected 3 repetitions but got %d", cfg.Repetitions)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("Expected 2 targets but got %d", len(cfg.Targets))
	}
	if cfg.Targets[0].Work == nil || cfg.Targets[0].Work.Kind != workload.KindSleep {
		t.Errorf("Expected sleep work target, got %+v", cfg.Targets[0].Work)
	}
	if cfg.Targets[1].Value == nil {
		t.Error("Expected value target to carry a value")
	}
}

func TestLoadConfigJSON(t *testing.T) {
	content := `{
		"name": "demo",
		"repetitions": 2,
		"targets": [
			{"name": "list", "value": [1, 2, 3]}
		]
	}`
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Repetitions != 2 {
		t.Errorf("Expected 2 repetitions but got %d", cfg.Repetitions)
	}
	if len(cfg.Targets) != 1 || cfg.Targets[0].Value == nil {
		t.Errorf("Expected one value target, got %+v", cfg.Targets)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing file but got none")
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{name: "malformed YAML", data: "targets: [unclosed", path: "bad.yaml"},
		{name: "malformed JSON", data: "{oops", path: "bad.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data), tt.path); err == nil {
				t.Error("Expected parse error but got none")
			}
		})
	}
}

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{name: "go duration", input: "30s", expected: 30 * time.Second},
		{name: "milliseconds", input: "500ms", expected: 500 * time.Millisecond},
		{name: "bare seconds", input: "30", expected: 30 * time.Second},
		{name: "empty", input: "", expected: 0},
		{name: "invalid", input: "soon", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationString(tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error but got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v but got %v", tt.expected, got)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Targets: []TargetConfig{
			{Work: &WorkConfig{Kind: workload.KindSleep}},
			{Work: &WorkConfig{Kind: workload.KindAllocate}},
			{Name: "named", Value: "x"},
		},
	}

	ApplyDefaults(cfg)

	if cfg.Repetitions != 5 {
		t.Errorf("Expected default of 5 repetitions but got %d", cfg.Repetitions)
	}
	if cfg.Metrics != "basic" {
		t.Errorf("Expected default metrics %q but got %q", "basic", cfg.Metrics)
	}
	if cfg.Sink != "stdout" {
		t.Errorf("Expected default sink %q but got %q", "stdout", cfg.Sink)
	}
	if cfg.Targets[0].Name != "target_1" {
		t.Errorf("Expected generated target name, got %q", cfg.Targets[0].Name)
	}
	if cfg.Targets[0].Work.Duration != "10ms" {
		t.Errorf("Expected default sleep duration, got %q", cfg.Targets[0].Work.Duration)
	}
	if cfg.Targets[1].Work.Count != 1024 || cfg.Targets[1].Work.Size != 1024 {
		t.Errorf("Expected default allocate parameters, got %+v", cfg.Targets[1].Work)
	}
	if cfg.Targets[2].Name != "named" {
		t.Errorf("Expected explicit name to survive defaults, got %q", cfg.Targets[2].Name)
	}
}

func TestConvertToWorkSpec(t *testing.T) {
	spec, err := ConvertToWorkSpec(&WorkConfig{
		Kind:     workload.KindSleep,
		Duration: "25ms",
	})
	if err != nil {
		t.Fatalf("ConvertToWorkSpec returned error: %v", err)
	}
	if spec.Kind != workload.KindSleep || spec.Duration != 25*time.Millisecond {
		t.Errorf("Expected sleep spec with 25ms, got %+v", spec)
	}

	if _, err := ConvertToWorkSpec(&WorkConfig{Kind: workload.KindSleep, Duration: "soon"}); err == nil {
		t.Error("Expected error for invalid duration but got none")
	}
}
