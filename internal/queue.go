package internal

// EffectQueue holds effects waiting to run: FIFO, deduplicated by each
// effect's own pending flag rather than by scanning the queue.
type EffectQueue struct {
	effects []*Effect
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{
		effects: make([]*Effect, 0),
	}
}

func (q *EffectQueue) Enqueue(e *Effect) {
	q.effects = append(q.effects, e)
}

func (q *EffectQueue) Empty() bool {
	return len(q.effects) == 0
}

// Drain runs effects in enqueue order until none remain. Emptiness is
// re-checked after every pop because a run may write signals and enqueue
// more effects into the same drain.
func (q *EffectQueue) Drain(r *Runtime) {
	for len(q.effects) > 0 {
		e := q.effects[0]
		q.effects = q.effects[1:]

		e.pending = false
		e.run(r)
	}
}

// SettledQueue holds one-shot callbacks to run once a flush fully drains.
type SettledQueue struct {
	callbacks []func()
}

func NewSettledQueue() *SettledQueue {
	return &SettledQueue{
		callbacks: make([]func(), 0),
	}
}

func (q *SettledQueue) Enqueue(fn func()) {
	q.callbacks = append(q.callbacks, fn)
}

func (q *SettledQueue) Empty() bool {
	return len(q.callbacks) == 0
}

func (q *SettledQueue) Run() {
	callbacks := q.callbacks
	q.callbacks = nil

	for _, cb := range callbacks {
		cb()
	}
}
