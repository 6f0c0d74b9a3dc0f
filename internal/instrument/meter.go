package instrument

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"
)

const bytesPerMB = 1 << 20

// measureMu serializes measurement regions. Peak tracking and collector
// control are process-wide; interleaved measurements would read each
// other's state.
var measureMu sync.Mutex

// Meter runs the measurement protocol for work, value and process targets.
type Meter struct {
	probe Probe
}

// NewMeter returns a meter using the given probe, or the runtime probe
// when probe is nil.
func NewMeter(probe Probe) *Meter {
	if probe == nil {
		probe = NewRuntimeProbe()
	}
	return &Meter{probe: probe}
}

// MeasureWork measures fn over the given number of repetitions. A panic in
// fn propagates to the caller; collection is restored before it does.
func (m *Meter) MeasureWork(fn func(), repetitions int) []Sample {
	samples := make([]Sample, 0, repetitions)
	for i := 0; i < repetitions; i++ {
		samples = append(samples, m.workSample(fn))
	}
	return samples
}

// workSample runs one repetition of the work protocol: collect, rebase the
// peak, pause collection, time the call, read the peak growth.
func (m *Meter) workSample(fn func()) Sample {
	measureMu.Lock()
	defer measureMu.Unlock()

	forceGC()
	m.probe.ResetPeak()
	peakBefore := m.probe.Peak()

	restore := pauseGC()
	defer restore()

	start := time.Now()
	fn()
	duration := toMillis(time.Since(start))
	peakAfter := m.probe.Peak()

	return Sample{
		Memory:   Float(toMB(peakAfter - peakBefore)),
		Duration: Float(duration),
	}
}

// MeasureValue measures v over the given number of repetitions. The value
// is deep-copied each repetition; a copy failure aborts the remaining
// repetitions and returns the error.
func (m *Meter) MeasureValue(v any, repetitions int) ([]Sample, error) {
	samples := make([]Sample, 0, repetitions)
	for i := 0; i < repetitions; i++ {
		s, err := m.valueSample(v)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// valueSample runs one repetition of the value protocol: collect, snapshot
// usage, deep-copy the value, snapshot again, introspect the copy.
func (m *Meter) valueSample(v any) (Sample, error) {
	measureMu.Lock()
	defer measureMu.Unlock()

	forceGC()
	usageBefore := m.probe.Usage()

	start := time.Now()
	copied, err := deepCopy(v)
	if err != nil {
		return Sample{}, err
	}
	duration := toMillis(time.Since(start))
	usageAfter := m.probe.Usage()

	// Collection stays on in value mode, so usage can shrink mid-copy.
	var delta uint64
	if usageAfter > usageBefore {
		delta = usageAfter - usageBefore
	}

	s := Sample{
		Memory:   Float(toMB(delta)),
		Duration: Float(duration),
	}
	s.Properties, s.Methods, s.Count = Introspect(copied)
	return s, nil
}

// MeasureProcess produces the single process-level sample: the high-water
// mark of memory obtained from the OS, and the time elapsed since start.
func (m *Meter) MeasureProcess(start time.Time) Sample {
	measureMu.Lock()
	defer measureMu.Unlock()

	return Sample{
		Memory:   Float(toMB(m.probe.SystemPeak())),
		Duration: Float(toMillis(time.Since(start))),
	}
}

// deepCopy forces a genuinely fresh allocation of v by serializing it and
// decoding into a new instance of the same type. A shallow copy would alias
// the original's backing store and the usage delta would measure nothing.
// Decoding into the original type rather than a bare interface keeps the
// copy introspectable.
func deepCopy(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serializing value: %w", err)
	}

	out := reflect.New(reflect.TypeOf(v))
	if err := json.Unmarshal(data, out.Interface()); err != nil {
		return nil, fmt.Errorf("deserializing value: %w", err)
	}
	return out.Elem().Interface(), nil
}

// toMB converts bytes to megabytes, rounded to two decimals.
func toMB(b uint64) float64 {
	return roundTo(float64(b)/bytesPerMB, 2)
}

// toMillis converts a duration to milliseconds, rounded to three decimals.
func toMillis(d time.Duration) float64 {
	return roundTo(d.Seconds()*1000, 3)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
