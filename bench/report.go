package bench

import (
	"strconv"
	"strings"
)

const (
	nullMarker     = "null"
	separatorWidth = 30
)

// Render formats one result as the plain-text report block: a header
// line, a separator, then one "Label: value" line per selected metric
// in the fixed order Memory, Time, Cost, Properties, Methods, Count.
// Inapplicable metrics render as the null marker. Pure function, built
// fresh on every call.
func Render(label string, metrics Metric, r Result) string {
	header := "Evaluation"
	if label != "" {
		header = "Evaluation for " + label
	}

	lines := []string{header, strings.Repeat("-", separatorWidth)}
	if metrics.Has(MetricMemory) {
		lines = append(lines, metricLine("Memory", r.Memory))
	}
	if metrics.Has(MetricTime) {
		lines = append(lines, metricLine("Time", r.Duration))
	}
	if metrics.Has(MetricCost) {
		lines = append(lines, metricLine("Cost", r.Cost()))
	}
	if metrics.Has(MetricObject) {
		lines = append(lines,
			metricLine("Properties", r.Properties),
			metricLine("Methods", r.Methods),
			metricLine("Count", r.Count))
	}

	return strings.Join(lines, "\n")
}

func metricLine(label string, v *float64) string {
	return label + ": " + formatMetric(v)
}

// formatMetric prints the value in its shortest plain decimal form, so
// whole numbers render without a trailing ".0".
func formatMetric(v *float64) string {
	if v == nil {
		return nullMarker
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
