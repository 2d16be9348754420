// File: api.go
// Role: Read-only accessors over a built Graph.
// Policy:
//   - No mutation, no locking, no hidden state.
//   - Slices returned by Arcs are shared with the graph and must be treated as read-only;
//     every other accessor returns a fresh copy.

package core

// Len returns the number of vertices in the arena.
// Complexity: O(1).
func (g *Graph[V, E]) Len() int { return len(g.vertices) }

// EdgeCount returns the number of accepted edges.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int { return len(g.edges) }

// Has reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph[V, E]) Has(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Index returns the arena index of id, or -1 and false when id is unknown.
// Complexity: O(1).
func (g *Graph[V, E]) Index(id string) (int, bool) {
	i, ok := g.index[id]
	if !ok {
		return -1, false
	}

	return i, true
}

// Vertex returns the vertex with the given ID.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph[V, E]) Vertex(id string) (Vertex[V], error) {
	if id == "" {
		return Vertex[V]{}, ErrEmptyVertexID
	}
	i, ok := g.index[id]
	if !ok {
		return Vertex[V]{}, ErrVertexNotFound
	}

	return g.vertices[i], nil
}

// VertexAt returns the vertex stored at arena index i.
// It panics if i is out of range, like a slice access.
func (g *Graph[V, E]) VertexAt(i int) Vertex[V] { return g.vertices[i] }

// Edge returns the accepted edge with index i (see Arc.Edge).
// It panics if i is out of range, like a slice access.
func (g *Graph[V, E]) Edge(i int) Edge[E] { return g.edges[i] }

// Arcs returns the outgoing arcs of the vertex at arena index i, in edge-list order.
// The returned slice is shared with the graph; do not modify it.
func (g *Graph[V, E]) Arcs(i int) []Arc { return g.adj[i] }

// Neighbors returns the IDs of vertices adjacent to id, one entry per arc,
// so parallel edges show up as repeated IDs.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph[V, E]) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adj[i]))
	for _, a := range g.adj[i] {
		out = append(out, g.vertices[a.To].ID)
	}

	return out, nil
}

// HasEdge reports whether at least one accepted edge joins u and v (either direction).
// Complexity: O(deg(u)).
func (g *Graph[V, E]) HasEdge(u, v string) bool {
	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	for _, a := range g.adj[iu] {
		if a.To == iv {
			return true
		}
	}

	return false
}

// Vertices returns a copy of the vertex table in arena order.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []Vertex[V] {
	out := make([]Vertex[V], len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Anomalies returns the rows skipped by Build, in input order.
// Each entry wraps ErrEmptyVertexID, ErrDuplicateVertex or ErrMalformedEdge.
func (g *Graph[V, E]) Anomalies() []error {
	out := make([]error, len(g.anomalies))
	copy(out, g.anomalies)

	return out
}
