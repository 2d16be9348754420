// Package core provides the immutable, arena-backed Graph used by every
// router in transitpath.
//
// A Graph G = (V,E) is built once from a flat vertex table and a flat edge
// list and is never mutated afterwards:
//
//   - Vertices live in a slice and are addressed by their position (the
//     "arena index"); Index(id) maps a string ID to that position.
//   - Every edge is undirected: Build inserts it into the adjacency of both
//     endpoints (a self-loop is inserted once).
//   - Parallel edges between the same pair are kept. Routers rely on this for
//     legitimate multi-edges such as interchange walking connectors.
//   - Isolated vertices are representable: their Arcs slice is empty.
//
// Vertex and edge payloads are generic. The metro network uses
// Graph[network.Station, network.Span]; the indoor facility uses
// Graph[facility.Point, facility.Passage].
//
// Malformed input never aborts construction. An edge that names an unknown
// or empty endpoint is skipped, a duplicate or empty vertex ID is ignored,
// and each case is recorded as an anomaly (see Anomalies) and logged at WARN
// through the logger supplied with WithLogger.
//
// Concurrency:
//
//	A built Graph holds no locks and needs none: all methods are read-only,
//	so any number of goroutines may query it at once.
//
// Errors:
//
//	ErrEmptyVertexID   – vertex ID is the empty string.
//	ErrVertexNotFound  – requested vertex does not exist.
//	ErrDuplicateVertex – vertex ID already present in the table.
//	ErrMalformedEdge   – edge endpoint does not resolve to a known vertex.
//
// Complexity:
//
//	Build      O(V + E)
//	Index/Has  O(1)
//	Arcs       O(1)
//	Components O(V + E)
package core
