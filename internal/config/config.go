// Package config loads benchmark scenario files.
package config

// Config represents the top-level benchmark scenario
type Config struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Repetitions int            `json:"repetitions,omitempty" yaml:"repetitions,omitempty"`
	Metrics     string         `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Sink        string         `json:"sink,omitempty" yaml:"sink,omitempty"`
	Targets     []TargetConfig `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// TargetConfig represents one evaluation target. Exactly one of Work,
// Value or ValueFile must be set; an empty target list runs the
// benchmark in process mode. Path selects a sub-document from a value
// file before measurement, using gjson syntax.
type TargetConfig struct {
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Work      *WorkConfig `json:"work,omitempty" yaml:"work,omitempty"`
	Value     any         `json:"value,omitempty" yaml:"value,omitempty"`
	ValueFile string      `json:"valueFile,omitempty" yaml:"valueFile,omitempty"`
	Path      string      `json:"path,omitempty" yaml:"path,omitempty"`
}

// WorkConfig represents a built-in work target. Which parameters apply
// depends on the kind: sleep uses duration, allocate uses count and
// size, churn uses rounds and size.
type WorkConfig struct {
	Kind     string `json:"kind" yaml:"kind"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Count    int    `json:"count,omitempty" yaml:"count,omitempty"`
	Size     int    `json:"size,omitempty" yaml:"size,omitempty"`
	Rounds   int    `json:"rounds,omitempty" yaml:"rounds,omitempty"`
}
