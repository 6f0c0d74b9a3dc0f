// Package instrument implements the measurement core: the memory probe,
// collector control, the work/value/process measurement protocols, and
// aggregation of per-repetition samples.
//
// # Measurement protocol
//
// Work targets are measured by invocation. Each repetition forces a full
// collection, rebases the heap high-water mark, pauses automatic collection
// for the duration of the call, and reports the peak growth in megabytes
// alongside the wall-clock duration in milliseconds:
//
//	meter := instrument.NewMeter(nil)
//	samples := meter.MeasureWork(func() { buildIndex() }, 5)
//
// Value targets are measured by deep copy. Each repetition snapshots current
// heap usage, round-trips the value through its serialized form to force a
// genuinely fresh allocation, snapshots again, and introspects the copy for
// structural counts:
//
//	samples, err := meter.MeasureValue(myStruct, 5)
//
// With no targets at all, MeasureProcess reports the memory obtained from
// the operating system and the elapsed time since a supplied start point.
//
// # Shared state
//
// The probe wraps process-wide runtime statistics and collector control is
// global, so the meter serializes every measurement region behind a package
// mutex. Concurrent meters take turns; they never corrupt each other's peak
// readings.
package instrument
