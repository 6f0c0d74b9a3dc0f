package config

import (
	"fmt"
	"strings"

	"github.com/heft-dev/heft/bench"
	"github.com/heft-dev/heft/internal/workload"
)

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the entire scenario, normally after ApplyDefaults.
//
// Returns nil if valid, or a ValidationErrors containing all validation
// errors. An empty target list is valid and selects process mode.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.Repetitions < 1 {
		errs.Add("repetitions", "repetitions must be at least 1")
	}

	if c.Metrics != "" {
		if _, err := bench.ParseMetric(c.Metrics); err != nil {
			errs.Add("metrics", err.Error())
		}
	}

	if c.Sink != "" {
		validSinks := map[string]bool{
			string(bench.SinkStdout): true,
			string(bench.SinkDebug):  true,
			string(bench.SinkLog):    true,
		}
		if !validSinks[c.Sink] {
			errs.Add("sink", fmt.Sprintf("unknown sink: %s", c.Sink))
		}
	}

	for i, target := range c.Targets {
		validateTarget(fmt.Sprintf("targets[%d]", i), &target, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateTarget validates a single target configuration.
func validateTarget(prefix string, tc *TargetConfig, errs *ValidationErrors) {
	sources := 0
	if tc.Work != nil {
		sources++
	}
	if tc.Value != nil {
		sources++
	}
	if tc.ValueFile != "" {
		sources++
	}

	switch sources {
	case 0:
		errs.Add(prefix, "one of work, value or valueFile is required")
	case 1:
	default:
		errs.Add(prefix, "work, value and valueFile are mutually exclusive")
	}

	if tc.Path != "" && tc.ValueFile == "" {
		errs.Add(prefix+".path", "path requires valueFile")
	}

	if tc.Work != nil {
		validateWork(prefix+".work", tc.Work, errs)
	}
}

// validateWork validates a built-in work configuration.
func validateWork(prefix string, wc *WorkConfig, errs *ValidationErrors) {
	validKinds := map[string]bool{
		workload.KindSleep:    true,
		workload.KindAllocate: true,
		workload.KindChurn:    true,
	}

	if wc.Kind == "" {
		errs.Add(prefix+".kind", "work kind is required")
	} else if !validKinds[wc.Kind] {
		errs.Add(prefix+".kind", fmt.Sprintf("unknown work kind: %s", wc.Kind))
	}

	if wc.Duration != "" {
		if _, err := ParseDurationString(wc.Duration); err != nil {
			errs.Add(prefix+".duration", fmt.Sprintf("invalid duration: %v", err))
		}
	}

	if wc.Count < 0 {
		errs.Add(prefix+".count", "count cannot be negative")
	}
	if wc.Size < 0 {
		errs.Add(prefix+".size", "size cannot be negative")
	}
	if wc.Rounds < 0 {
		errs.Add(prefix+".rounds", "rounds cannot be negative")
	}
}
