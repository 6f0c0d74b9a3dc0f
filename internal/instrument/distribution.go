package instrument

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
const (
	histMinMicros = 1
	histMaxMicros = 3600000000
	histSigFigs   = 3
)

// Distribution summarizes the spread of per-repetition durations. All
// values are milliseconds.
type Distribution struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	P99   float64 `json:"p99"`
	Count int64   `json:"count"`
}

// DurationDistribution builds the distribution of the duration metric
// across samples. Samples without a duration are skipped; nil is returned
// when none carries one.
func DurationDistribution(samples []Sample) *Distribution {
	hist := hdrhistogram.New(histMinMicros, histMaxMicros, histSigFigs)

	recorded := 0
	for _, s := range samples {
		if s.Duration == nil {
			continue
		}

		micros := int64(math.Round(*s.Duration * 1000))
		if micros < histMinMicros {
			micros = histMinMicros
		}
		if micros > histMaxMicros {
			micros = histMaxMicros
		}
		hist.RecordValue(micros)
		recorded++
	}

	if recorded == 0 {
		return nil
	}

	return &Distribution{
		Min:   float64(hist.Min()) / 1000,
		Max:   float64(hist.Max()) / 1000,
		Mean:  hist.Mean() / 1000,
		P50:   float64(hist.ValueAtQuantile(50)) / 1000,
		P95:   float64(hist.ValueAtQuantile(95)) / 1000,
		P99:   float64(hist.ValueAtQuantile(99)) / 1000,
		Count: hist.TotalCount(),
	}
}
