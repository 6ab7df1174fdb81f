package internal

type Computed struct {
	subs dependents
	deps sources

	owner   *Owner
	compute func() any

	value     any
	stale     bool
	computing bool
	disposed  bool
}

func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := &Computed{
		owner:   r.NewOwner(),
		compute: compute,
		stale:   true,
	}

	c.owner.OnDispose(func() {
		c.disposed = true
		c.deps.clear(c)
	})

	return c
}

// Read returns the memoized value, recomputing it first when stale.
// The read also registers c as a dependent of the enclosing evaluation, so
// computed-of-computed chains track exactly like signal reads.
func (c *Computed) Read() any {
	r := GetRuntime()
	r.tracker.Track(c)

	if c.stale && !c.disposed {
		c.recompute(r)
	}

	return c.value
}

// recompute evaluates the compute function under tracking with a fresh
// dependency set. The stale flag clears only after a successful evaluation:
// a panic leaves the node stale so the next read retries instead of caching
// a partial value.
func (c *Computed) recompute(r *Runtime) {
	if c.computing {
		panic(ErrCircularDependency)
	}
	c.computing = true
	defer func() { c.computing = false }()

	done := false
	defer func() {
		if done {
			return
		}
		if v := recover(); v != nil && !c.owner.catch(v) {
			panic(v)
		}
	}()

	c.owner.reset()
	c.deps.clear(c)

	r.tracker.RunWithDependent(c, c.owner, func() {
		c.value = c.compute()
	})

	c.stale = false
	done = true
}

// Invalidate marks c stale and forwards the flag downstream without
// recomputing anything. Idempotent: a node already stale has already been
// walked, which keeps diamond-shaped graphs linear and guarantees termination.
func (c *Computed) Invalidate() {
	if c.stale || c.disposed {
		return
	}
	c.stale = true

	GetRuntime().invalidate(c.subs.snapshot())
}

// Dispose detaches c from every upstream source and runs its cleanups.
// A disposed computed keeps returning its last value and never recomputes.
func (c *Computed) Dispose() {
	c.owner.Dispose()
}

func (c *Computed) addSource(s Source) { c.deps.add(s) }

func (c *Computed) addDependent(d Dependent)    { c.subs.add(d) }
func (c *Computed) removeDependent(d Dependent) { c.subs.remove(d) }
