package internal

// Runtime holds one reactive graph's evaluation state: the tracking slot,
// the batcher, and the pending effect and settled queues. Each goroutine
// resolves its own runtime, so independent graphs never share mutable state.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	queue   *EffectQueue
	settled *SettledQueue

	flushing bool
	depth    int
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		queue:   NewEffectQueue(),
		settled: NewSettledQueue(),
	}
}

// Flush drains the pending effect queue to empty, then fires settled
// callbacks. Writes made by a running effect enqueue into the same drain;
// a flush already in progress, or one requested inside a batch, defers to
// the outer one.
func (r *Runtime) Flush() {
	if r.flushing || r.batcher.IsBatching() {
		return
	}

	r.flushing = true
	defer func() { r.flushing = false }()

	for !r.queue.Empty() || !r.settled.Empty() {
		r.queue.Drain(r)
		r.settled.Run()
	}
}

// invalidate forwards the stale flag to dependents in registration order.
// The depth guard turns a runaway dependency chain into a reported error
// instead of exhausting the stack.
func (r *Runtime) invalidate(nodes []Dependent) {
	r.depth++
	defer func() { r.depth-- }()

	if r.depth > maxPropagationDepth {
		panic(ErrPropagationDepth)
	}

	for _, d := range nodes {
		d.Invalidate()
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// OnCleanup registers fn on the current owner; without one it is dropped.
func (r *Runtime) OnCleanup(fn func()) {
	if o := r.tracker.CurrentOwner(); o != nil {
		o.OnCleanup(fn)
	}
}

// OnSettled registers a one-shot callback for the end of the next flush.
func (r *Runtime) OnSettled(fn func()) {
	r.settled.Enqueue(fn)
}
