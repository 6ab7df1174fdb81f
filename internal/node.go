package internal

import "slices"

// Dependent is a node that reacts to upstream changes: a Computed or an
// Effect. Invalidate only marks the node stale; recomputation is always
// deferred to the next read (computeds) or to the effect queue (effects).
type Dependent interface {
	Invalidate()
	addSource(s Source)
}

// Source is a node whose reads build dependency edges: a Signal or a Computed.
type Source interface {
	addDependent(d Dependent)
	removeDependent(d Dependent)
}

// dependents is the downstream edge set of a source.
// Insertion-ordered and deduplicated; invalidation walks it in registration order.
type dependents struct {
	nodes []Dependent
}

func (ds *dependents) add(d Dependent) {
	if !slices.Contains(ds.nodes, d) {
		ds.nodes = append(ds.nodes, d)
	}
}

func (ds *dependents) remove(d Dependent) {
	if i := slices.Index(ds.nodes, d); i != -1 {
		ds.nodes = slices.Delete(ds.nodes, i, i+1)
	}
}

// snapshot clones the edge set so a walk survives re-registration mid-iteration.
func (ds *dependents) snapshot() []Dependent {
	return slices.Clone(ds.nodes)
}

// sources is the upstream edge set of a dependent, rebuilt from scratch on
// every evaluation so it only ever reflects the latest run's reads.
type sources struct {
	nodes []Source
}

func (ss *sources) add(s Source) {
	if !slices.Contains(ss.nodes, s) {
		ss.nodes = append(ss.nodes, s)
	}
}

// clear detaches d from every source it registered into.
func (ss *sources) clear(d Dependent) {
	for _, s := range ss.nodes {
		s.removeDependent(d)
	}
	ss.nodes = nil
}
