// Package dijkstra defines core types and configuration options
// for the shortest-path solver over core.Graph.
//
// Options:
//
//	– MaxDistance: optional cap on labels to explore; vertices beyond it stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNilWeight       if no weight function was supplied.
//	– ErrNegativeWeight  if the weight function yields a negative (or NaN) value for any edge.
//	– ErrNoPath          if the target cannot be reached from the source, including
//	                     when either ID is unknown.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates that no weight function was passed.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the destination is unreachable from the source.
	// Unknown vertex IDs are folded into this outcome.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// WeightFunc extracts the weight to minimise from an edge payload.
// A weight of +Inf marks the edge as impassable (for example a closed passage).
type WeightFunc[E any] func(E) float64

// Path is a solved route: vertex IDs from source to target inclusive, the
// indices of the edges taken between them (len(Edges) == len(Vertices)-1),
// and the accumulated weight.
//
// Edges identify the exact parallel edge chosen, so callers can sum
// secondary metrics over the same edges the solver minimised.
type Path struct {
	Vertices []string
	Edges    []int
	Total    float64
}

// Hops returns the number of edges traversed.
func (p Path) Hops() int { return len(p.Edges) }

// Options configures the behavior of the solver.
//
// MaxDistance – labels greater than this are never settled. Must be ≥ 0.
// Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
