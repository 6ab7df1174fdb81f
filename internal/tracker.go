package internal

// Tracker holds the current-evaluator slot used to attribute reads to the
// node being evaluated. At most one node evaluates at a time; nested
// evaluations save and restore the previous occupant on every exit path.
type Tracker struct {
	tracking bool

	currentOwner     *Owner    // for lifecycle/cleanup tracking
	currentDependent Dependent // for reactive dependency tracking
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

// RunWithDependent installs node as the active evaluator and owner around fn.
func (t *Tracker) RunWithDependent(node Dependent, owner *Owner, fn func()) {
	prevOwner := t.currentOwner
	prevDependent := t.currentDependent

	t.currentOwner = owner
	t.currentDependent = node

	defer func() {
		t.currentOwner = prevOwner
		t.currentDependent = prevDependent
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// Track links the active evaluator to s in both directions.
// Registration is idempotent and a node never depends on itself.
func (t *Tracker) Track(s Source) {
	if !t.ShouldTrack() {
		return
	}

	cur := t.currentDependent
	if any(cur) == any(s) {
		return
	}

	s.addDependent(cur)
	cur.addSource(s)
}

func (t *Tracker) ShouldTrack() bool {
	return t.currentDependent != nil && t.tracking
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}
