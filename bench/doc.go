// Package bench provides a micro-benchmarking library for measuring the
// memory and time cost of callables and data values.
//
// A Benchmark evaluates a list of targets. A Work target is a
// zero-argument function, measured by invoking it with the garbage
// collector paused and peak-memory tracking armed. A Value target is
// any data value, measured by deep-copying it through a serialize
// round trip (so the memory delta reflects real allocation) and
// introspecting the copy for structural counts. With no targets at
// all, the benchmark measures the enclosing process instead.
//
// # Quick Start
//
//	b := bench.New([]bench.Target{
//	    bench.Work(func() { expensiveCall() }),
//	}, bench.WithLabel("expensive call"), bench.WithRepetitions(10))
//
//	if err := b.ToStdout(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Inspecting Results Programmatically
//
// Run executes the pipeline without emitting a report; getters return
// nil until it has run, and nil afterwards for metrics that do not
// apply to the target:
//
//	b := bench.New([]bench.Target{bench.Value(users)})
//	if err := b.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if count := b.Count(); count != nil {
//	    fmt.Printf("elements: %v\n", *count)
//	}
//	fmt.Printf("memory MB: %v\n", *b.Memory())
//	fmt.Printf("cost: %v\n", *b.Cost())
//
// # Process Mode
//
// With an empty target list the benchmark reports the process's peak
// memory and the elapsed time since a supplied start timestamp:
//
//	b := bench.New(nil, bench.WithProcessStart(bootTime))
//	_ = b.ToDebug()
//
// # Report Delivery
//
// Exactly one terminating verb may run per benchmark: ToStdout, ToDebug
// or ToLog (or Emit with a Sink value). Closing a benchmark that never
// emitted falls back to the debug sink, so a deferred Close guarantees
// results are never silently dropped:
//
//	b := bench.New(targets)
//	defer b.Close()
package bench
