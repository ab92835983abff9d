// Package ucs implements uniform-cost search over a core.Graph,
// returning the least-cost path between two vertices together with a
// count of the vertices generated along the way.
package ucs

import (
	"container/heap"
	"fmt"

	"github.com/citymaps/ucsearch/core"
)

// Search finds the minimum-total-weight path from start to goal in g,
// applying any number of functional Options.
//
// The frontier is a min-heap keyed by accumulated path cost, with a
// monotonically increasing insertion sequence as tie-breaker: of two
// equal-cost entries, the one inserted earlier is expanded first. A
// best-cost table discards dominated extensions — a neighbor reached
// at a cost not strictly below its best recorded cost is dropped,
// uncounted. With non-negative weights the first time goal is popped
// its path cost is minimal.
//
// A start vertex absent from g has no outgoing edges and simply yields
// ErrNoPath; absence is not a distinct validation error.
//
// Returns ErrGraphNil or ErrEmptyVertexID for invalid input,
// ErrOptionViolation for bad options, and ErrNoPath (wrapped with the
// endpoint IDs) when goal is unreachable from start.
func Search(g *core.Graph, start, goal string, opts ...Option) (*SearchResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyVertexID
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &searcher{
		graph: g,
		opts:  o,
		best:  map[string]int64{start: 0},
	}

	// Seed the frontier with the zero-cost start entry.
	heap.Push(&s.frontier, &frontierEntry{id: start, path: []string{start}})

	res, ok := s.run(goal)
	if !ok {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, start, goal)
	}

	return res, nil
}

// searcher holds the mutable state of one Search invocation.
// All of it is local to the call and discarded on return.
type searcher struct {
	graph *core.Graph
	opts  Options

	frontier frontier

	// best maps vertex ID → lowest accumulated cost seen so far.
	best map[string]int64

	// seq numbers frontier insertions; strictly a tie-breaker.
	seq uint64

	generated int
}

// run pops frontier entries in (cost, insertion) order until goal
// surfaces or the frontier is exhausted.
func (s *searcher) run(goal string) (*SearchResult, bool) {
	for s.frontier.Len() > 0 {
		cur := heap.Pop(&s.frontier).(*frontierEntry)
		s.opts.OnExpand(cur.id, cur.cost)

		if cur.id == goal {
			return &SearchResult{
				Path:           cur.path,
				TotalCost:      cur.cost,
				NodesGenerated: s.generated,
			}, true
		}

		s.extend(cur)
	}

	return nil, false
}

// extend relaxes every neighbor of cur, inserting a new frontier entry
// for each strict cost improvement. Stale entries for already-improved
// vertices stay in the heap; popped later, they re-expand harmlessly
// because none of their extensions can beat the recorded best costs.
func (s *searcher) extend(cur *frontierEntry) {
	for _, e := range s.graph.Neighbors(cur.id) {
		newCost := cur.cost + e.Weight
		if newCost > s.opts.MaxCost {
			continue
		}
		if prev, seen := s.best[e.To]; seen && newCost >= prev {
			continue // dominated extension
		}
		s.best[e.To] = newCost
		s.generated++
		s.seq++
		s.opts.OnGenerate(e.To, newCost)

		// Path snapshot per entry: copy, never alias, so sibling
		// extensions of cur cannot clobber each other.
		path := make([]string, len(cur.path)+1)
		copy(path, cur.path)
		path[len(cur.path)] = e.To

		heap.Push(&s.frontier, &frontierEntry{
			cost: newCost,
			seq:  s.seq,
			id:   e.To,
			path: path,
		})
	}
}

// frontierEntry is one not-yet-expanded candidate: the accumulated
// cost, the insertion sequence number, the vertex, and the path that
// reached it.
type frontierEntry struct {
	cost int64
	seq  uint64
	id   string
	path []string
}

// frontier is a min-heap of *frontierEntry ordered by (cost, seq).
type frontier []*frontierEntry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by cost, then by insertion sequence: equal-cost entries
// come out in FIFO order, not vertex-ID order.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap; x must be of type *frontierEntry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierEntry)) }

// Pop removes and returns the last element after heap reordering.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
