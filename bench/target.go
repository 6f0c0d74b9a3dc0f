package bench

// Mode tells how a target (or the result derived from it) was
// measured.
type Mode string

const (
	// ModeWork measures by invoking a zero-argument function.
	ModeWork Mode = "work"
	// ModeValue measures by deep-copying and introspecting a value.
	ModeValue Mode = "value"
	// ModeProcess measures the enclosing process; produced only when a
	// benchmark has no targets.
	ModeProcess Mode = "process"
)

// Target is one evaluation subject: executable work or a data value.
// The engine never mutates the wrapped value.
type Target struct {
	name  string
	mode  Mode
	fn    func()
	value any
}

// Work wraps a zero-argument function as an invocable target.
func Work(fn func()) Target {
	return Target{mode: ModeWork, fn: fn}
}

// Value wraps a data value as an introspectable target.
func Value(v any) Target {
	return Target{mode: ModeValue, value: v}
}

// Of classifies v at runtime: a func() becomes a Work target,
// everything else a Value target. Functions with any other signature
// are not invocable here and count as data.
func Of(v any) Target {
	if fn, ok := v.(func()); ok {
		return Work(fn)
	}
	return Value(v)
}

// Named returns a copy of the target carrying a display name.
func (t Target) Named(name string) Target {
	t.name = name
	return t
}

// Name returns the target's display name, empty if never set.
func (t Target) Name() string { return t.name }

// Mode returns how the target will be measured.
func (t Target) Mode() Mode { return t.mode }
