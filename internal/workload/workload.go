// Package workload provides built-in evaluation targets: deterministic
// work factories for exercising the measurement engine, and value
// construction from JSON literals.
package workload

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Work kinds understood by Build.
const (
	KindSleep    = "sleep"
	KindAllocate = "allocate"
	KindChurn    = "churn"
)

// ErrUnknownKind is returned by Build for an unrecognized work kind.
var ErrUnknownKind = errors.New("unknown workload kind")

// Spec describes a work target in configuration terms. Which fields
// apply depends on the kind: sleep uses Duration, allocate uses Count
// and Size, churn uses Rounds and Size.
type Spec struct {
	Kind     string
	Duration time.Duration
	Count    int
	Size     int
	Rounds   int
}

// Build constructs the work function described by spec.
func Build(spec Spec) (func(), error) {
	switch spec.Kind {
	case KindSleep:
		return Sleep(spec.Duration), nil
	case KindAllocate:
		return Allocate(spec.Count, spec.Size), nil
	case KindChurn:
		return Churn(spec.Rounds, spec.Size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

// Sleep returns work that blocks for d without allocating.
func Sleep(d time.Duration) func() {
	return func() {
		time.Sleep(d)
	}
}

// Allocate returns work that allocates count blocks of size bytes and
// keeps them all reachable until the work returns.
func Allocate(count, size int) func() {
	return func() {
		blocks := make([][]byte, count)
		for i := range blocks {
			blocks[i] = make([]byte, size)
		}
		runtime.KeepAlive(blocks)
	}
}

// Churn returns work that allocates one block of size bytes per round
// and drops it immediately, producing collectable garbage rather than
// retained memory.
func Churn(rounds, size int) func() {
	return func() {
		for i := 0; i < rounds; i++ {
			block := make([]byte, size)
			runtime.KeepAlive(block)
		}
	}
}
