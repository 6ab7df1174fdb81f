package internal

type Effect struct {
	deps sources

	owner *Owner
	fn    func()

	pending  bool
	disposed bool
}

// NewEffect creates an effect and runs it once synchronously to establish
// its initial dependency set. Afterwards it only re-runs through the queue.
func (r *Runtime) NewEffect(fn func()) *Effect {
	e := &Effect{
		owner: r.NewOwner(),
		fn:    fn,
	}

	e.owner.OnDispose(func() {
		e.disposed = true
		e.deps.clear(e)
	})

	e.run(r)

	return e
}

// Invalidate marks the effect pending and enqueues it. Dedup is the pending
// flag itself, so an effect invalidated through several paths of the same
// write still runs once.
func (e *Effect) Invalidate() {
	if e.pending || e.disposed {
		return
	}
	e.pending = true

	GetRuntime().queue.Enqueue(e)
}

// run disposes whatever the previous run created, rebuilds the dependency
// set from scratch, and re-invokes the effect function under tracking.
// A panic is offered to the owner chain's OnError catchers and otherwise
// propagates to whoever triggered the run.
func (e *Effect) run(r *Runtime) {
	if e.disposed {
		return
	}

	defer func() {
		if v := recover(); v != nil && !e.owner.catch(v) {
			panic(v)
		}
	}()

	e.owner.reset()
	e.deps.clear(e)

	r.tracker.RunWithDependent(e, e.owner, e.fn)
}

// Dispose detaches the effect from every source it reads and prevents any
// future run, including one already queued.
func (e *Effect) Dispose() {
	e.owner.Dispose()
}

func (e *Effect) addSource(s Source) { e.deps.add(s) }
