package instrument

import (
	"runtime"
)

// Probe abstracts process-wide memory introspection so the meter can run
// against a deterministic implementation in tests. The real probe reads
// runtime.MemStats, which is global state shared by every measurement in
// the process; the meter serializes access behind its package mutex.
type Probe interface {
	// ResetPeak rebases the tracked heap high-water mark to current usage.
	ResetPeak()

	// Peak returns the highest heap usage seen since the last reset, in bytes.
	Peak() uint64

	// Usage returns the current heap usage in bytes.
	Usage() uint64

	// SystemPeak returns the high-water mark of memory obtained from the
	// operating system, in bytes.
	SystemPeak() uint64
}

// RuntimeProbe is the runtime-backed Probe. Peak tracking is sample-based
// and advances on every Peak call; with collection paused the heap only
// grows, so reading the mark right after a measured region yields the
// region's true peak.
type RuntimeProbe struct {
	peak uint64
}

// NewRuntimeProbe returns a probe backed by runtime.ReadMemStats.
func NewRuntimeProbe() *RuntimeProbe {
	return &RuntimeProbe{}
}

// ResetPeak rebases the high-water mark to the current heap usage.
func (p *RuntimeProbe) ResetPeak() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.peak = m.HeapAlloc
}

// Peak returns the highest heap usage observed at a probe call since the
// last reset.
func (p *RuntimeProbe) Peak() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.HeapAlloc > p.peak {
		p.peak = m.HeapAlloc
	}
	return p.peak
}

// Usage returns the current heap usage.
func (p *RuntimeProbe) Usage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// SystemPeak returns the total memory obtained from the operating system.
// Unlike heap usage this never shrinks, so it doubles as the process-wide
// high-water mark.
func (p *RuntimeProbe) SystemPeak() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}
