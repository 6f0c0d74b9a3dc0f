package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heft-dev/heft/internal/instrument"
	"github.com/heft-dev/heft/internal/output"
)

const defaultRepetitions = 5

// Sink names a terminating destination for the rendered report.
type Sink string

const (
	SinkDebug  Sink = "debug"
	SinkLog    Sink = "log"
	SinkStdout Sink = "stdout"
)

var (
	// ErrUnknownSink is returned when a terminating verb names a sink
	// that does not exist. Nothing is run or emitted in that case.
	ErrUnknownSink = errors.New("unknown sink")

	// ErrAlreadyEmitted is returned when a terminating verb runs on a
	// benchmark that already emitted its report.
	ErrAlreadyEmitted = errors.New("report already emitted")
)

// Benchmark evaluates a list of targets and holds their aggregated
// results. Construction is pure; nothing is measured until Run or a
// terminating verb is called.
//
// A Benchmark is not safe for concurrent use. Measurements from
// separate benchmarks serialize on a process-wide lock inside the
// instrumentation engine, since peak-memory tracking is global state.
type Benchmark struct {
	targets      []Target
	metrics      Metric
	label        string
	repetitions  int
	processStart time.Time
	logger       *zap.SugaredLogger
	out          io.Writer
	debugOut     io.Writer

	meter *instrument.Meter
	id    string

	results []Result
	emitted bool

	// Flat result slots, overwritten by every Run. With several
	// targets these reflect the last one; Results keeps them all.
	memory     *float64
	duration   *float64
	count      *float64
	properties *float64
	methods    *float64
}

// Option configures a Benchmark at construction.
type Option func(*Benchmark)

// WithMetrics selects which metrics the rendered report includes.
func WithMetrics(m Metric) Option {
	return func(b *Benchmark) { b.metrics = m }
}

// WithLabel sets the report's header label.
func WithLabel(label string) Option {
	return func(b *Benchmark) { b.label = label }
}

// WithRepetitions sets how many times each target is measured. Values
// below 1 clamp to 1.
func WithRepetitions(n int) Option {
	return func(b *Benchmark) {
		if n < 1 {
			n = 1
		}
		b.repetitions = n
	}
}

// WithProcessStart supplies the process start timestamp used by
// process mode. Defaults to the Benchmark's construction time.
func WithProcessStart(t time.Time) Option {
	return func(b *Benchmark) { b.processStart = t }
}

// WithLogger sets the logger backing the log sink.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *Benchmark) { b.logger = logger }
}

// WithOutput redirects the stdout sink, mainly for tests and
// embedding.
func WithOutput(w io.Writer) Option {
	return func(b *Benchmark) { b.out = w }
}

// WithDebugOutput redirects the debug sink.
func WithDebugOutput(w io.Writer) Option {
	return func(b *Benchmark) { b.debugOut = w }
}

// New creates a benchmark over targets. A nil or empty target list
// puts the benchmark in process mode.
func New(targets []Target, opts ...Option) *Benchmark {
	b := &Benchmark{
		targets:      targets,
		metrics:      MetricBasic,
		repetitions:  defaultRepetitions,
		processStart: time.Now(),
		logger:       zap.NewNop().Sugar(),
		meter:        instrument.NewMeter(nil),
		id:           uuid.NewString(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the full measurement pipeline and stores the results.
// Running again re-measures and overwrites, it never appends. On
// error no result is stored and the previous results stay intact. A
// panic from a Work target propagates to the caller.
func (b *Benchmark) Run() error {
	if len(b.targets) == 0 {
		sample := b.meter.MeasureProcess(b.processStart)
		b.publish([]Result{{
			Mode:        ModeProcess,
			Repetitions: 1,
			Memory:      sample.Memory,
			Duration:    sample.Duration,
		}})
		return nil
	}

	results := make([]Result, 0, len(b.targets))
	for i, target := range b.targets {
		result, err := b.measure(target)
		if err != nil {
			return fmt.Errorf("measuring %s: %w", describeTarget(target, i), err)
		}
		results = append(results, result)
	}

	b.publish(results)
	return nil
}

func (b *Benchmark) measure(target Target) (Result, error) {
	var samples []instrument.Sample
	switch target.mode {
	case ModeValue:
		var err error
		samples, err = b.meter.MeasureValue(target.value, b.repetitions)
		if err != nil {
			return Result{}, err
		}
	default:
		samples = b.meter.MeasureWork(target.fn, b.repetitions)
	}

	agg := instrument.Aggregate(samples)
	return Result{
		Target:      target.name,
		Mode:        target.mode,
		Repetitions: b.repetitions,
		Memory:      agg.Memory,
		Duration:    agg.Duration,
		Count:       agg.Count,
		Properties:  agg.Properties,
		Methods:     agg.Methods,
		Durations:   distributionOf(instrument.DurationDistribution(samples)),
	}, nil
}

// publish replaces all result state in one step, so a failed run can
// never leave partial output behind.
func (b *Benchmark) publish(results []Result) {
	b.results = results

	last := results[len(results)-1]
	b.memory = last.Memory
	b.duration = last.Duration
	b.count = last.Count
	b.properties = last.Properties
	b.methods = last.Methods
}

// Memory returns the averaged memory delta in MB. Nil before Run and
// for targets where memory could not be measured.
func (b *Benchmark) Memory() *float64 { return b.memory }

// Duration returns the averaged wall-clock duration in milliseconds.
// Nil before Run.
func (b *Benchmark) Duration() *float64 { return b.duration }

// Count returns the averaged element count. Nil unless the target was
// a collection-like value.
func (b *Benchmark) Count() *float64 { return b.count }

// Properties returns the averaged data-member count. Nil unless the
// target was an object-like value.
func (b *Benchmark) Properties() *float64 { return b.properties }

// Methods returns the averaged callable-member count. Nil unless the
// target was an object-like value.
func (b *Benchmark) Methods() *float64 { return b.methods }

// Cost derives memory times duration scaled down by 1000, rounded to
// three decimals. Nil when either operand is nil.
func (b *Benchmark) Cost() *float64 { return costOf(b.memory, b.duration) }

// Results returns one result per target from the most recent Run, or
// the single process-mode result. Nil before Run.
func (b *Benchmark) Results() []Result { return b.results }

// ID returns the benchmark's run identity, used to correlate log-sink
// entries.
func (b *Benchmark) ID() string { return b.id }

// Report renders the current result slots as the plain-text block.
// Before Run every metric renders as null.
func (b *Benchmark) Report() string {
	return Render(b.label, b.metrics, Result{
		Memory:     b.memory,
		Duration:   b.duration,
		Count:      b.count,
		Properties: b.properties,
		Methods:    b.methods,
	})
}

// Emit runs the benchmark, renders the report and hands it to the
// named sink. Exactly one terminating verb may run per benchmark; a
// second call returns ErrAlreadyEmitted without re-running. An
// unrecognized sink returns ErrUnknownSink immediately and does not
// consume the emit.
func (b *Benchmark) Emit(sink Sink) error {
	switch sink {
	case SinkDebug, SinkLog, SinkStdout:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSink, string(sink))
	}

	if b.emitted {
		return ErrAlreadyEmitted
	}
	if err := b.Run(); err != nil {
		return err
	}

	b.sinkFor(sink).Emit(b.Report())
	b.emitted = true
	return nil
}

// ToDebug runs the benchmark and writes the report to the debug sink,
// colorized when attached to a terminal.
func (b *Benchmark) ToDebug() error { return b.Emit(SinkDebug) }

// ToLog runs the benchmark and logs the report at info severity.
func (b *Benchmark) ToLog() error { return b.Emit(SinkLog) }

// ToStdout runs the benchmark and writes the report to stdout.
func (b *Benchmark) ToStdout() error { return b.Emit(SinkStdout) }

// Close emits to the debug sink if no terminating verb ever ran, so a
// caller who forgot to request output still gets the report. Safe to
// defer right after New; a no-op once emitted.
func (b *Benchmark) Close() error {
	if b.emitted {
		return nil
	}
	return b.Emit(SinkDebug)
}

func (b *Benchmark) sinkFor(sink Sink) output.Sink {
	switch sink {
	case SinkLog:
		return output.NewLogSink(b.logger, b.id)
	case SinkStdout:
		return output.NewStdoutSink(b.out)
	default:
		return output.NewDebugSink(b.debugOut)
	}
}

func distributionOf(d *instrument.Distribution) *Distribution {
	if d == nil {
		return nil
	}
	return &Distribution{
		Min:   d.Min,
		Max:   d.Max,
		Mean:  d.Mean,
		P50:   d.P50,
		P95:   d.P95,
		P99:   d.P99,
		Count: d.Count,
	}
}

func describeTarget(target Target, index int) string {
	if target.name != "" {
		return fmt.Sprintf("target %q", target.name)
	}
	return fmt.Sprintf("target %d", index)
}
