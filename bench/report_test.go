package bench

import (
	"strings"
	"testing"

	"github.com/heft-dev/heft/internal/instrument"
)

func TestRenderAllMetrics(t *testing.T) {
	r := Result{
		Memory:     instrument.Float(1.5),
		Duration:   instrument.Float(2),
		Properties: instrument.Float(3),
		Methods:    instrument.Float(2),
	}

	got := Render("demo", MetricAll, r)
	want := strings.Join([]string{
		"Evaluation for demo",
		"------------------------------",
		"Memory: 1.5",
		"Time: 2",
		"Cost: 0.003",
		"Properties: 3",
		"Methods: 2",
		"Count: null",
	}, "\n")

	if got != want {
		t.Errorf("Expected:\n%s\nbut got:\n%s", want, got)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 8 {
		t.Errorf("Expected 8 lines with all metrics selected, got %d", len(lines))
	}
}

func TestRenderBasicMetrics(t *testing.T) {
	got := Render("", MetricBasic, Result{})

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines with the basic set, got %d", len(lines))
	}
	if lines[0] != "Evaluation" {
		t.Errorf("Expected plain header without label, got %q", lines[0])
	}
	if lines[2] != "Memory: null" || lines[3] != "Time: null" || lines[4] != "Cost: null" {
		t.Errorf("Expected null metrics, got %q", got)
	}
}

func TestRenderSingleMetric(t *testing.T) {
	got := Render("", MetricTime, Result{Duration: instrument.Float(0.125)})

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines with one metric selected, got %d", len(lines))
	}
	if lines[2] != "Time: 0.125" {
		t.Errorf("Expected time line, got %q", lines[2])
	}
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "nil renders the null marker", value: nil, expected: "null"},
		{name: "whole number", value: instrument.Float(3), expected: "3"},
		{name: "fraction", value: instrument.Float(1.75), expected: "1.75"},
		{name: "small fraction", value: instrument.Float(0.001), expected: "0.001"},
		{name: "large number", value: instrument.Float(1024), expected: "1024"},
		{name: "unrounded mean", value: instrument.Float(5.0 / 3.0), expected: "1.6666666666666667"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMetric(tt.value); got != tt.expected {
				t.Errorf("Expected %q but got %q", tt.expected, got)
			}
		})
	}
}
