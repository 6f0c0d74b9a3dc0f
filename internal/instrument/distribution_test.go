package instrument

import (
	"testing"
)

func TestDurationDistribution(t *testing.T) {
	samples := []Sample{
		{Duration: Float(1)},
		{Duration: Float(2)},
		{Duration: Float(3)},
	}

	d := DurationDistribution(samples)
	if d == nil {
		t.Fatal("Expected a distribution, got nil")
	}

	if d.Count != 3 {
		t.Errorf("Expected count 3, got %d", d.Count)
	}
	// The histogram keeps 3 significant figures, so allow for quantization.
	if d.Min < 0.99 || d.Min > 1.01 {
		t.Errorf("Expected min near 1ms, got %v", d.Min)
	}
	if d.Max < 2.97 || d.Max > 3.03 {
		t.Errorf("Expected max near 3ms, got %v", d.Max)
	}
	if d.P50 < 1.98 || d.P50 > 2.02 {
		t.Errorf("Expected p50 near 2ms, got %v", d.P50)
	}
	if d.Mean < 1.9 || d.Mean > 2.1 {
		t.Errorf("Expected mean near 2ms, got %v", d.Mean)
	}
}

func TestDurationDistributionSkipsMissing(t *testing.T) {
	samples := []Sample{
		{Duration: Float(5)},
		{Duration: nil},
	}

	d := DurationDistribution(samples)
	if d == nil {
		t.Fatal("Expected a distribution, got nil")
	}
	if d.Count != 1 {
		t.Errorf("Expected count 1, got %d", d.Count)
	}
}

func TestDurationDistributionEmpty(t *testing.T) {
	if d := DurationDistribution(nil); d != nil {
		t.Errorf("Expected nil for no samples, got %+v", d)
	}
	if d := DurationDistribution([]Sample{{Memory: Float(1)}}); d != nil {
		t.Errorf("Expected nil when no sample has a duration, got %+v", d)
	}
}
