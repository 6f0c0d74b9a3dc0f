package instrument

// Sample is one repetition's raw measurement. A nil field means the metric
// does not apply to the measured target, which is not the same as a
// measured zero.
//
// Which fields are set depends on the mode: work samples carry memory and
// duration, value samples additionally carry whichever structural counts
// apply, process samples carry memory and duration only.
type Sample struct {
	// Memory is the heap growth in megabytes.
	Memory *float64 `json:"memory"`

	// Duration is the wall-clock time in milliseconds.
	Duration *float64 `json:"duration"`

	// Count is the element count for maps, slices and arrays.
	Count *float64 `json:"count"`

	// Properties is the declared field count for structs.
	Properties *float64 `json:"properties"`

	// Methods is the method count for structs.
	Methods *float64 `json:"methods"`
}

// Float returns a pointer to v. Nullable metrics travel as *float64, so
// building one from a literal needs an addressable copy.
func Float(v float64) *float64 {
	return &v
}
