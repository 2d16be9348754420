// Package dijkstra implements a label-setting shortest-path solver over the
// immutable arena graph in package core.
//
// Notes on implementation choices:
//
//   - Working state (labels, visited flags, predecessors) lives in slices indexed by
//     arena position and is allocated per call; nothing is shared between calls.
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Edges weighing +Inf are impassable.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties between equal labels are broken by arena index, so results are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
)

// ShortestPath computes the minimum-weight path from source to target in g,
// minimising the value returned by weight for each traversed edge.
//
// Returns:
//
//   - Path: vertex IDs from source to target inclusive, chosen edge indices and total weight.
//   - err:  ErrNoPath (wrapped with the query) when the target is unreachable or either ID
//     is unknown; ErrNilGraph, ErrNilWeight, ErrNegativeWeight for invalid input.
//
// A query with source == target on a known vertex returns the single-vertex path
// with zero total weight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath[V, E any](g *core.Graph[V, E], source, target string, weight WeightFunc[E], opts ...Option) (Path, error) {
	if err := validate(g, weight); err != nil {
		return Path{}, err
	}

	// Unknown IDs are unreachable, not invalid input.
	src, ok := g.Index(source)
	if !ok {
		return Path{}, fmt.Errorf("%w: unknown source %q", ErrNoPath, source)
	}
	dst, ok := g.Index(target)
	if !ok {
		return Path{}, fmt.Errorf("%w: unknown target %q", ErrNoPath, target)
	}
	if src == dst {
		return Path{Vertices: []string{source}, Edges: []int{}, Total: 0}, nil
	}

	r := newRunner(g, weight, opts)
	r.init(src)
	r.process(dst)

	return r.path(src, dst)
}

// Tree runs the solver from source without a target and returns the labels of
// every vertex, so that many destinations can be inspected after one run.
func Tree[V, E any](g *core.Graph[V, E], source string, weight WeightFunc[E], opts ...Option) (*Labels[V, E], error) {
	if err := validate(g, weight); err != nil {
		return nil, err
	}
	src, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: unknown source %q", ErrNoPath, source)
	}

	r := newRunner(g, weight, opts)
	r.init(src)
	r.process(-1)

	return &Labels[V, E]{r: r, source: src}, nil
}

// Labels holds the result of a Tree run.
type Labels[V, E any] struct {
	r      *runner[V, E]
	source int
}

// Distance reports the shortest distance from the source to id and whether id was reached.
func (l *Labels[V, E]) Distance(id string) (float64, bool) {
	i, ok := l.r.g.Index(id)
	if !ok || !l.r.visited[i] {
		return math.Inf(1), false
	}

	return l.r.dist[i], true
}

// PathTo reconstructs the shortest path from the source to id.
// Returns ErrNoPath when id is unknown or was not reached.
func (l *Labels[V, E]) PathTo(id string) (Path, error) {
	dst, ok := l.r.g.Index(id)
	if !ok {
		return Path{}, fmt.Errorf("%w: unknown target %q", ErrNoPath, id)
	}
	if dst == l.source {
		return Path{Vertices: []string{id}, Edges: []int{}, Total: 0}, nil
	}
	if !l.r.visited[dst] {
		return Path{}, fmt.Errorf("%w: %q not reached", ErrNoPath, id)
	}

	return l.r.path(l.source, dst)
}

// validate checks the inputs shared by every entry point.
func validate[V, E any](g *core.Graph[V, E], weight WeightFunc[E]) error {
	if g == nil {
		return ErrNilGraph
	}
	if weight == nil {
		return ErrNilWeight
	}

	// Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	var e core.Edge[E]
	var w float64
	for i := 0; i < g.EdgeCount(); i++ {
		e = g.Edge(i)
		w = weight(e.Attr)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s-%s weight=%v", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	return nil
}

// runner holds the mutable state for a single solver execution.
type runner[V, E any] struct {
	g       *core.Graph[V, E] // The input graph; read-only.
	weight  WeightFunc[E]     // Weight extracted from each edge payload.
	options Options           // Configuration options.
	dist    []float64         // Arena index → current best distance from the source.
	prev    []int             // Arena index → predecessor index, -1 if none.
	via     []int             // Arena index → edge used to reach it, -1 if none.
	visited []bool            // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap for lazy decrease-key.
}

func newRunner[V, E any](g *core.Graph[V, E], weight WeightFunc[E], opts []Option) *runner[V, E] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := g.Len()

	return &runner[V, E]{
		g:       g,
		weight:  weight,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		via:     make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every label to +Inf except the source, and seeds the heap.
func (r *runner[V, E]) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
		r.via[i] = -1
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process is the core loop. It settles vertices in order of increasing label and
// stops when the heap is empty, the cap is exceeded, or target (if ≥ 0) is settled.
func (r *runner[V, E]) process(target int) {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)

		// Skip stale heap entries.
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.idx] = true
		if item.idx == target {
			return
		}
		r.relax(item.idx)
	}
}

// relax examines each arc leaving u and improves neighbour labels.
func (r *runner[V, E]) relax(u int) {
	var w, newDist float64
	for _, a := range r.g.Arcs(u) {
		if r.visited[a.To] {
			continue
		}
		w = r.weight(r.g.Edge(a.Edge).Attr)
		if math.IsInf(w, 1) {
			continue // impassable
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only: on equal labels the first edge found is kept.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		r.prev[a.To] = u
		r.via[a.To] = a.Edge
		heap.Push(&r.pq, nodeItem{idx: a.To, dist: newDist})
	}
}

// path follows predecessors from dst back to src.
// If the chain does not end at src the target was never reached.
func (r *runner[V, E]) path(src, dst int) (Path, error) {
	var rev []int
	for cur := dst; cur != -1; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	if rev[len(rev)-1] != src {
		return Path{}, fmt.Errorf("%w: %q to %q", ErrNoPath, r.g.VertexAt(src).ID, r.g.VertexAt(dst).ID)
	}

	p := Path{
		Vertices: make([]string, 0, len(rev)),
		Edges:    make([]int, 0, len(rev)-1),
		Total:    r.dist[dst],
	}
	for i := len(rev) - 1; i >= 0; i-- {
		p.Vertices = append(p.Vertices, r.g.VertexAt(rev[i]).ID)
		if i < len(rev)-1 {
			p.Edges = append(p.Edges, r.via[rev[i]])
		}
	}

	return p, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	idx  int     // arena index
	dist float64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by arena index.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to arena index for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there first).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
