// Package core_test contains unit tests for the Graph value type:
// construction, symmetric edge insertion, insertion-order iteration,
// and input validation.
package core_test

import (
	"testing"

	"github.com/citymaps/ucsearch/core"
)

func TestGraph_AddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 7); err != nil {
		t.Fatal(err)
	}

	// Both directions must exist with the same weight.
	if w, ok := g.Weight("A", "B"); !ok || w != 7 {
		t.Errorf("Weight(A,B) = %d,%v; want 7,true", w, ok)
	}
	if w, ok := g.Weight("B", "A"); !ok || w != 7 {
		t.Errorf("Weight(B,A) = %d,%v; want 7,true", w, ok)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d; want 1", got)
	}
}

func TestGraph_AddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	if err := g.AddEdge("A", "B", 3); err != nil {
		t.Fatal(err)
	}

	if _, ok := g.Weight("B", "A"); ok {
		t.Error("directed graph must not record the reverse arc")
	}
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("", "B", 1); err != core.ErrEmptyVertexID {
		t.Errorf("empty ID: got %v; want ErrEmptyVertexID", err)
	}
	if err := g.AddEdge("A", "B", -1); err != core.ErrNegativeWeight {
		t.Errorf("negative weight: got %v; want ErrNegativeWeight", err)
	}
	if err := g.AddEdge("A", "A", 1); err != core.ErrLoopNotAllowed {
		t.Errorf("self-loop: got %v; want ErrLoopNotAllowed", err)
	}
}

func TestGraph_AddEdge_OverwriteKeepsOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 2)
	g.AddEdge("A", "B", 9) // overwrite, must not duplicate B in the order

	nbrs := g.Neighbors("A")
	if len(nbrs) != 2 {
		t.Fatalf("len(Neighbors(A)) = %d; want 2", len(nbrs))
	}
	if nbrs[0].To != "B" || nbrs[0].Weight != 9 {
		t.Errorf("Neighbors(A)[0] = %+v; want B with weight 9", nbrs[0])
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2", g.EdgeCount())
	}
}

func TestGraph_InsertionOrderIsStable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("Hub", "North", 1)
	g.AddEdge("Hub", "East", 1)
	g.AddEdge("Hub", "South", 1)
	g.AddEdge("Hub", "West", 1)

	want := []string{"North", "East", "South", "West"}
	// Iteration order must survive arbitrarily many reads.
	for run := 0; run < 20; run++ {
		nbrs := g.Neighbors("Hub")
		for i, e := range nbrs {
			if e.To != want[i] {
				t.Fatalf("run %d: Neighbors(Hub)[%d] = %q; want %q", run, i, e.To, want[i])
			}
		}
	}

	wantVerts := []string{"Hub", "North", "East", "South", "West"}
	verts := g.Vertices()
	for i, v := range verts {
		if v != wantVerts[i] {
			t.Fatalf("Vertices()[%d] = %q; want %q", i, v, wantVerts[i])
		}
	}
}

func TestGraph_UnknownVertexHasNoNeighbors(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)

	if nbrs := g.Neighbors("Nowhere"); nbrs != nil {
		t.Errorf("Neighbors(Nowhere) = %v; want nil", nbrs)
	}
	if g.HasVertex("Nowhere") {
		t.Error("HasVertex(Nowhere) = true; want false")
	}
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); err != core.ErrEmptyVertexID {
		t.Errorf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}
	if err := g.AddVertex("Solo"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertex("Solo"); err != nil {
		t.Fatalf("re-adding a vertex must be a no-op, got %v", err)
	}
	if !g.HasVertex("Solo") || g.VertexCount() != 1 {
		t.Errorf("expected exactly one vertex, VertexCount() = %d", g.VertexCount())
	}
}
