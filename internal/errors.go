package internal

import "errors"

var (
	// ErrCircularDependency reports a computed reading itself, directly or
	// through other computeds, during its own recomputation.
	ErrCircularDependency = errors.New("ripple: circular dependency")

	// ErrPropagationDepth reports an invalidation walk deeper than
	// maxPropagationDepth, which means a runaway dependency chain.
	ErrPropagationDepth = errors.New("ripple: propagation depth exceeded")
)

const maxPropagationDepth = 10000
