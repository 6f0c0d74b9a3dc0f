package bench

import (
	"encoding/json"
	"math"
)

// Distribution summarizes the spread of per-repetition durations in
// milliseconds.
type Distribution struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
	Count int64   `json:"count"`
}

// Result holds one target's aggregated metrics: the arithmetic mean of
// each metric across all repetitions. Metric fields are nil when the
// metric does not apply to the target, never zero.
type Result struct {
	Target      string        `json:"target,omitempty"`
	Mode        Mode          `json:"mode"`
	Repetitions int           `json:"repetitions"`
	Memory      *float64      `json:"memory"`
	Duration    *float64      `json:"duration"`
	Count       *float64      `json:"count"`
	Properties  *float64      `json:"properties"`
	Methods     *float64      `json:"methods"`
	Durations   *Distribution `json:"durations,omitempty"`
}

// Cost derives the composite resource score, memory times duration
// scaled down by 1000, rounded to three decimals. Nil when either
// operand is nil.
func (r Result) Cost() *float64 {
	return costOf(r.Memory, r.Duration)
}

// MarshalJSON adds the derived cost alongside the stored fields.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		Cost *float64 `json:"cost"`
	}{plain(r), r.Cost()})
}

func costOf(memory, duration *float64) *float64 {
	if memory == nil || duration == nil {
		return nil
	}
	cost := round3(*memory * *duration / 1000)
	return &cost
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
