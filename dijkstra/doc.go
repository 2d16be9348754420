// Package dijkstra provides one generic shortest-path solver shared by the
// metro network router and the indoor facility router.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost path between two vertices of a
//     core.Graph[V, E]; the cost of an edge is whatever the caller's
//     WeightFunc[E] extracts from its payload (kilometres, minutes, metres ...).
//   - Tree runs the same search from one source to every vertex, for
//     "nearest X" style queries.
//   - The solver is a pure function: per-call working state is allocated on
//     entry and dropped on return, so concurrent queries over one graph need
//     no coordination.
//
// Semantics:
//
//   - source == target (known ID) → single-vertex path, Total 0.
//   - Unknown source or target → ErrNoPath, never a panic.
//   - Disconnected target → ErrNoPath. "No path" is always an error value,
//     never an empty Path, so it cannot be mistaken for a zero-length route.
//   - Parallel edges: the lower-weight edge under the requested WeightFunc wins;
//     Path.Edges records which one.
//   - Ties between equal labels are settled in arena (insertion) order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with a binary heap and lazy decrease-key.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilWeight: invalid call.
//   - ErrNegativeWeight: a weight below zero (or NaN) was found by the pre-scan.
//   - ErrNoPath: destination unreachable.
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(g, "MIY", "BEG", func(s Span) float64 { return s.Time })
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // report "no route"
//	}
package dijkstra
