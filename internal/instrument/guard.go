package instrument

import (
	"runtime"
	"runtime/debug"
)

// forceGC runs a full collection so garbage from earlier work cannot show
// up in the next measurement's delta.
func forceGC() {
	runtime.GC()
}

// pauseGC turns automatic collection off and returns the function that
// restores the previous setting. Callers defer the restore immediately so
// collection resumes on every exit path, a panic in measured work included.
func pauseGC() (restore func()) {
	prev := debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(prev)
	}
}
