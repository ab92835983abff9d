// Package ucs implements uniform-cost search (UCS): best-first search on a
// weighted graph where the priority function is the accumulated path cost
// from the start vertex.
//
// Overview:
//
//   - Search computes the minimum-total-weight path between two named
//     vertices of a core.Graph with non-negative edge weights, in
//     O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - A min-heap frontier always expands the cheapest pending entry; when
//     two entries cost the same, the one inserted earlier wins (FIFO
//     tie-break via an insertion sequence number, not vertex-ID order).
//   - A best-cost table records the lowest cost at which each vertex has
//     been reached; extensions that do not strictly improve on it are
//     dropped without being inserted or counted (dominated-path pruning).
//   - The search terminates the first time the goal is popped from the
//     frontier. With non-negative weights that pop is optimal: vertices
//     leave the frontier in non-decreasing order of path cost.
//
// Why not BFS: breadth-first search minimizes the number of edges, not the
// summed weight, so on a road map with varying distances it can return a
// longer route. UCS is the uninformed search that is both complete and
// optimal for non-negative step costs.
//
// Search-effort metric:
//
//   - SearchResult.NodesGenerated counts frontier insertions, excluding
//     the start vertex. Counting happens only at insertion, never at pop,
//     so stale heap entries for an already-improved vertex cannot inflate
//     the figure. Each strict improvement of a vertex counts once.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil:        nil *core.Graph passed to Search.
//   - ErrEmptyVertexID:   empty start or goal ID.
//   - ErrNoPath:          the frontier emptied before the goal was popped.
//     Deterministic for a static graph — retrying cannot succeed.
//   - ErrOptionViolation: an invalid functional option (e.g. negative
//     MaxCost) was supplied.
//
// A start vertex that is absent from the graph is NOT a validation error:
// it has no outgoing edges, the frontier empties after the seed entry, and
// Search reports ErrNoPath. This mirrors the contract of the graph data
// source, which never promises that every queried ID has edges.
//
// API reference:
//
//	func Search(
//	    g *core.Graph,
//	    start, goal string,
//	    opts ...Option,
//	) (*SearchResult, error)
//
//	  - g:     pointer to the (read-only during search) graph.
//	  - start: vertex the path must begin at.
//	  - goal:  vertex the path must reach.
//	  - opts:  zero or more functional options:
//	      • WithMaxCost(int64):  skip extensions beyond a cost cap.
//	      • WithOnExpand(fn):    observe every frontier pop.
//	      • WithOnGenerate(fn):  observe every frontier insertion.
//
// Thread safety:
//
//   - All search state (frontier, best-cost table, counters) is local to
//     one Search call. Concurrent Search calls over the same built graph
//     are safe as long as nothing mutates the graph meanwhile.
//
// See also:
//
//   - core.Graph: insertion-ordered adjacency construction and queries.
//   - citymap:    the hardcoded New York road map this engine ships with.
package ucs
