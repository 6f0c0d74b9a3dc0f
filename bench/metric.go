package bench

import (
	"fmt"
	"strings"
)

// Metric is a bit-flag set selecting which metrics the report renders.
// It filters display only: measurement always computes every metric
// that applies to a target, so the getters work regardless of the set.
type Metric uint8

const (
	MetricMemory Metric = 1 << iota
	MetricTime
	MetricCost
	MetricObject

	// MetricBasic is the default set: memory, time and cost.
	MetricBasic = MetricMemory | MetricTime | MetricCost
	// MetricAll adds the structural counts to the basic set.
	MetricAll = MetricBasic | MetricObject
)

// Has reports whether every flag in want is selected.
func (m Metric) Has(want Metric) bool {
	return m&want == want
}

// ParseMetric parses a metric-set name: "basic", "all", or a
// comma-separated list of flag names (memory, time, cost, object).
// The empty string parses as the default basic set.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return MetricBasic, nil
	case "all":
		return MetricAll, nil
	}

	var m Metric
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "memory":
			m |= MetricMemory
		case "time":
			m |= MetricTime
		case "cost":
			m |= MetricCost
		case "object":
			m |= MetricObject
		default:
			return 0, fmt.Errorf("unknown metric %q", part)
		}
	}
	return m, nil
}

func (m Metric) String() string {
	switch m {
	case MetricAll:
		return "all"
	case MetricBasic:
		return "basic"
	case 0:
		return "none"
	}

	var parts []string
	if m.Has(MetricMemory) {
		parts = append(parts, "memory")
	}
	if m.Has(MetricTime) {
		parts = append(parts, "time")
	}
	if m.Has(MetricCost) {
		parts = append(parts, "cost")
	}
	if m.Has(MetricObject) {
		parts = append(parts, "object")
	}
	return strings.Join(parts, ",")
}
