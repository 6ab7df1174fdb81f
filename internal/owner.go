package internal

// Owner is a node in the ownership tree. It collects cleanup callbacks and
// panic catchers for everything created while it was the current owner, and
// disposing it cascades through its children, newest first.
type Owner struct {
	parent   *Owner
	children []*Owner

	// cleanup functions ran once, before the next re-evaluation or on dispose
	cleanups []func()

	// dispose handlers ran on every dispose
	disposers []func()

	// panic catchers for evaluations owned by this owner or its descendants
	catchers []func(any)

	// context values set on this owner
	context map[any]any
}

// NewOwner creates an owner attached as a child of the current one, if any.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{parent: r.tracker.CurrentOwner()}
	if o.parent != nil {
		o.parent.children = append(o.parent.children, o)
	}

	return o
}

// Run executes fn with o as the current owner, so every reactive node
// created inside becomes a child of o. A panic inside fn is offered to the
// owner chain's catchers and otherwise propagates.
func (o *Owner) Run(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil && !o.catch(v) {
			panic(v)
		}
	}()

	GetRuntime().tracker.RunWithOwner(o, func() {
		err = fn()
	})

	return err
}

func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) OnDispose(fn func()) {
	o.disposers = append(o.disposers, fn)
}

func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// Dispose tears the owner down: children newest first, then cleanups, then
// dispose handlers.
func (o *Owner) Dispose() {
	o.reset()

	for _, fn := range o.disposers {
		fn()
	}
}

// reset disposes children and runs cleanups; ran before each re-evaluation
// of the owning computed or effect.
func (o *Owner) reset() {
	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

// catch walks up the owner tree until a level with catchers absorbs v.
func (o *Owner) catch(v any) bool {
	for cur := o; cur != nil; cur = cur.parent {
		if len(cur.catchers) == 0 {
			continue
		}

		for _, fn := range cur.catchers {
			fn(v)
		}

		return true
	}

	return false
}
