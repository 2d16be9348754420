// File: build.go
// Role: One-shot construction of the arena graph from flat vertex/edge tables.
// Determinism:
//   - Arena indices follow the order of the vertex table (first occurrence wins).
//   - Arcs of a vertex follow the order of the edge list.
// Policy:
//   - Malformed rows are skipped and reported, never fatal.

package core

import (
	"fmt"
)

// Build converts a vertex table and an edge list into an immutable Graph.
//
// Implementation:
//   - Stage 1: Register every vertex in table order; empty and duplicate IDs are
//     reported and skipped.
//   - Stage 2: Resolve both endpoints of every edge; edges naming an unknown or
//     empty endpoint are reported and skipped.
//   - Stage 3: Insert each accepted edge into the adjacency of both endpoints
//     (self-loops once). Parallel edges are kept as-is.
//
// The input slices are not retained: Build copies what it keeps, so callers
// may reuse or mutate them afterwards.
//
// Complexity: O(V + E) time and space.
func Build[V, E any](vertices []Vertex[V], edges []Edge[E], opts ...Option) *Graph[V, E] {
	cfg := options{log: DiscardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[V, E]{
		vertices: make([]Vertex[V], 0, len(vertices)),
		index:    make(map[string]int, len(vertices)),
		edges:    make([]Edge[E], 0, len(edges)),
	}

	// 1) Vertex table.
	for i, v := range vertices {
		if v.ID == "" {
			g.report(cfg, fmt.Errorf("%w: vertex row %d", ErrEmptyVertexID, i), "vertex", i)
			continue
		}
		if _, dup := g.index[v.ID]; dup {
			g.report(cfg, fmt.Errorf("%w: %q at row %d", ErrDuplicateVertex, v.ID, i), "vertex", i)
			continue
		}
		g.index[v.ID] = len(g.vertices)
		g.vertices = append(g.vertices, v)
	}
	g.adj = make([][]Arc, len(g.vertices))

	// 2) + 3) Edge list.
	var u, w int
	var okU, okW bool
	for i, e := range edges {
		u, okU = g.index[e.From]
		w, okW = g.index[e.To]
		if !okU || !okW {
			g.report(cfg, fmt.Errorf("%w: edge %d %q-%q", ErrMalformedEdge, i, e.From, e.To), "edge", i,
				logField{"from", e.From}, logField{"to", e.To})
			continue
		}

		eid := len(g.edges)
		g.edges = append(g.edges, e)
		g.adj[u] = append(g.adj[u], Arc{To: w, Edge: eid})
		if u != w {
			g.adj[w] = append(g.adj[w], Arc{To: u, Edge: eid})
		}
	}

	return g
}

type logField struct {
	key   string
	value any
}

// report records an anomaly and logs it at WARN.
func (g *Graph[V, E]) report(cfg options, err error, kind string, row int, extra ...logField) {
	g.anomalies = append(g.anomalies, err)

	entry := cfg.log.WithField(kind, row)
	for _, f := range extra {
		entry = entry.WithField(f.key, f.value)
	}
	entry.WithError(err).Warn("skipping malformed graph row")
}
