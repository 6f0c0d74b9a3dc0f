package instrument

// Aggregate folds per-repetition samples into per-metric means. A nil for a
// metric at any repetition forces that metric's aggregate to nil: an
// inapplicable reading must not shrink the divisor or be averaged in as
// zero. Division is plain float division; per-sample values are already
// rounded by the meter.
func Aggregate(samples []Sample) Sample {
	if len(samples) == 0 {
		return Sample{}
	}

	sums := Sample{
		Memory:     Float(0),
		Duration:   Float(0),
		Count:      Float(0),
		Properties: Float(0),
		Methods:    Float(0),
	}
	for _, s := range samples {
		sums.Memory = addNullable(sums.Memory, s.Memory)
		sums.Duration = addNullable(sums.Duration, s.Duration)
		sums.Count = addNullable(sums.Count, s.Count)
		sums.Properties = addNullable(sums.Properties, s.Properties)
		sums.Methods = addNullable(sums.Methods, s.Methods)
	}

	n := float64(len(samples))
	return Sample{
		Memory:     divNullable(sums.Memory, n),
		Duration:   divNullable(sums.Duration, n),
		Count:      divNullable(sums.Count, n),
		Properties: divNullable(sums.Properties, n),
		Methods:    divNullable(sums.Methods, n),
	}
}

// addNullable adds v onto the running sum. Once either side is nil the sum
// stays nil for good.
func addNullable(sum, v *float64) *float64 {
	if sum == nil || v == nil {
		return nil
	}
	return Float(*sum + *v)
}

func divNullable(sum *float64, n float64) *float64 {
	if sum == nil {
		return nil
	}
	return Float(*sum / n)
}
