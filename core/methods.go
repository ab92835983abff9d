package core

// AddVertex registers id as a vertex with no edges.
// Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// AddEdge records an edge u→v with the given non-negative weight,
// and the mirror edge v→u unless the graph is directed. Vertices are
// created on demand. Re-adding an existing edge overwrites its weight
// without disturbing the neighbor order.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	if g.setArc(u, v, weight) {
		g.edgeCount++
	}
	if !g.directed {
		g.setArc(v, u, weight)
	}

	return nil
}

// ensureVertex creates the adjacency slot for id if absent.
// Caller must hold g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = make(map[string]int64)
	g.vertexOrder = append(g.vertexOrder, id)
}

// setArc writes one directed adjacency entry, tracking neighbor order on
// first sight. Reports whether the arc was new. Caller must hold g.mu.
func (g *Graph) setArc(u, v string, weight int64) bool {
	_, seen := g.adj[u][v]
	if !seen {
		g.neighborOrder[u] = append(g.neighborOrder[u], v)
	}
	g.adj[u][v] = weight

	return !seen
}

// HasVertex reports whether id is a vertex of the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Neighbors returns the outgoing edges of id in insertion order.
// An unknown id yields a nil slice, not an error: a vertex the graph
// has never heard of simply has nowhere to go.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	order := g.neighborOrder[id]
	if len(order) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(order))
	for _, v := range order {
		out = append(out, Edge{From: id, To: v, Weight: g.adj[id][v]})
	}

	return out
}

// Weight returns the weight of edge u→v and whether the edge exists.
func (g *Graph) Weight(u, v string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]

	return w, ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// EdgeCount returns the number of AddEdge calls that stuck
// (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether AddEdge records only one direction.
func (g *Graph) Directed() bool {
	return g.directed
}
