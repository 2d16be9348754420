package core

// Components partitions the graph into connected components using BFS.
//
// Each component lists vertex IDs in BFS discovery order; components are
// ordered by the arena index of their first vertex, so the result is
// deterministic for a given input. Isolated vertices form singleton components.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph[V, E]) Components() [][]string {
	return g.ComponentsFunc(nil)
}

// ComponentsFunc is Components over the edges whose payload satisfies keep.
// A nil keep follows every edge.
func (g *Graph[V, E]) ComponentsFunc(keep func(E) bool) [][]string {
	seen := make([]bool, len(g.vertices))
	var comps [][]string

	for start := range g.vertices {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.vertices[u].ID)
			for _, a := range g.adj[u] {
				if seen[a.To] || (keep != nil && !keep(g.edges[a.Edge].Attr)) {
					continue
				}
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
