package internal

import "reflect"

type Signal struct {
	subs dependents

	value any
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{value: initial}
}

// Read returns the current value, registering the active evaluator (if any)
// as a dependent. Outside a reactive context this is a plain read.
func (s *Signal) Read() any {
	GetRuntime().tracker.Track(s)

	return s.value
}

// Write stores a new value and propagates the change.
// Writing an equal value is a no-op: nothing is invalidated and no effect
// runs. Values are compared with ==; a value of non-comparable dynamic type
// always counts as changed, so callers should treat signal values as
// immutable snapshots and write a fresh value instead of mutating in place.
func (s *Signal) Write(v any) {
	if isEqual(s.value, v) {
		return
	}

	s.value = v

	r := GetRuntime()
	r.invalidate(s.subs.snapshot())
	r.Flush()
}

func (s *Signal) addDependent(d Dependent)    { s.subs.add(d) }
func (s *Signal) removeDependent(d Dependent) { s.subs.remove(d) }

func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}
