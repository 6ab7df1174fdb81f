// Package ripple is a fine-grained reactive dependency-tracking engine.
// Signals hold values, computeds derive memoized values lazily from other
// reactive reads, and effects re-run whenever a value they read changes.
// The dependency graph is built implicitly from reads, never wired by hand.
package ripple

import "github.com/ajcathey/ripple/internal"

// Reported instead of a stack overflow when the graph misbehaves.
var (
	ErrCircularDependency = internal.ErrCircularDependency
	ErrPropagationDepth   = internal.ErrPropagationDepth
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a read/write reactive value cell.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial),
	}
}

// Read the current value of the signal, tracking the dependency if within a reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Write a new value to the signal, triggering updates to any dependents.
// Writing a value equal to the current one does nothing.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a value derived from other signals. The compute
// function runs lazily on the next read after a dependency changed, and its
// result is memoized in between.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}),
	}
}

// Read the current value of the computed, tracking the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Dispose removes the computed from every signal or computed it reads, so
// later writes no longer reach it. It keeps returning its last value.
func (c *Computed[T]) Dispose() {
	c.computed.Dispose()
}

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs the given function once
// immediately and again whenever any signal or computed it read changes.
func NewEffect(fn func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(fn),
	}
}

// Dispose stops the effect from ever running again and detaches it from
// everything it reads.
func (e *Effect) Dispose() {
	e.effect.Dispose()
}

// NewBatch batches multiple signal writes into a single update cycle,
// instead of triggering updates after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called once, before the enclosing
// computed or effect re-runs or when its owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnSettled registers a function to be called once, when the next update
// cycle has fully settled (every pending effect has run).
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new reactive owner.
// An owner manages the lifecycle of reactive nodes created within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
// Each reactive node created within the function will be a child of this owner,
// and will be disposed when Dispose() is called on this owner.
func (o *Owner) Run(fn func() error) error { return o.owner.Run(fn) }

// Dispose this owner and all its children.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Add a cleanup function to be called ONCE when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called each time Dispose is called on this owner.
func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }

// Add a function to be called when a panic occurs within this owner.
// If no error listener is registered here or on a parent owner, the panic
// will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }

type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a new reactive context with an initial value.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(initial),
	}
}

// Value retrieves the current value of the context,
// inheriting from parent owners if not set in the current owner.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set a new value for the context in the current owner.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
