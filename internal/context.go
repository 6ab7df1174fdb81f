package internal

// Context is an owner-scoped value: Set stores it on the current owner and
// Value walks the owner chain, falling back to the initial value.
type Context struct {
	initial any
}

func (r *Runtime) NewContext(initial any) *Context {
	return &Context{initial: initial}
}

// Value returns the value set on the nearest enclosing owner, inheriting
// from parent owners, or the initial value when none has set one.
func (c *Context) Value() any {
	for o := GetRuntime().tracker.CurrentOwner(); o != nil; o = o.parent {
		if v, ok := o.context[c]; ok {
			return v
		}
	}

	return c.initial
}

// Set stores the value on the current owner. Without an active owner there
// is nothing to hold the value and the call is a no-op.
func (c *Context) Set(v any) {
	o := GetRuntime().tracker.CurrentOwner()
	if o == nil {
		return
	}

	if o.context == nil {
		o.context = make(map[any]any)
	}
	o.context[c] = v
}
