// Package citymap is the built-in graph data source: the fixed New York /
// Pennsylvania / New Jersey road map the route search ships with.
//
// Every road is a bidirectional (cityA, cityB, km) triple; the graph is
// symmetric by construction and all distances are non-negative. The map is
// rebuilt on every call, so callers own their copy and may search it
// concurrently or extend it freely.
package citymap

import "github.com/citymaps/ucsearch/core"

// Default endpoints of the single batch run.
const (
	// DefaultStart is the origin city of the stock route query.
	DefaultStart = "Elmira"

	// DefaultGoal is the destination city of the stock route query.
	DefaultGoal = "New York City"
)

// Road is one bidirectional road segment with its length in kilometers.
type Road struct {
	From string
	To   string
	Km   int64
}

// roads lists the map's road segments. Order matters: it fixes vertex and
// neighbor insertion order, which the search uses for FIFO tie-breaking.
var roads = []Road{
	{"Elmira", "Ithaca", 60},
	{"Elmira", "Williamsport", 80},
	{"Ithaca", "Binghamton", 80},
	{"Binghamton", "Syracuse", 110},
	{"Syracuse", "Albany", 200},
	{"Binghamton", "Albany", 220},
	{"Binghamton", "Scranton", 95},
	{"Scranton", "Wilkes-Barre", 30},
	{"Wilkes-Barre", "Stroudsburg", 105},
	{"Stroudsburg", "Albany", 190},
	{"Stroudsburg", "Paterson", 90},
	{"Paterson", "New York City", 35},
	{"Newark", "New York City", 25},
	{"Trenton", "New York City", 95},
	{"Allentown", "Newark", 130},
	{"Allentown", "Trenton", 80},
	{"Allentown", "Wilkes-Barre", 95},
	{"Allentown", "Scranton", 120},
	{"Allentown", "Harrisburg", 90},
	{"Harrisburg", "Lancaster", 60},
	{"Lancaster", "Philadelphia", 160},
	{"Harrisburg", "Philadelphia", 110},
	{"Harrisburg", "Williamsport", 135},
	{"Harrisburg", "Scranton", 175},
	{"Williamsport", "Scranton", 140},
	{"Philadelphia", "Trenton", 50},
}

// Roads returns a copy of the map's road list.
func Roads() []Road {
	out := make([]Road, len(roads))
	copy(out, roads)

	return out
}

// NewYork builds the road map as a fresh weighted undirected graph.
// The edge data is static and well-formed, so construction cannot fail.
func NewYork() *core.Graph {
	g := core.NewGraph()
	for _, r := range roads {
		// Static data keeps the invariants AddEdge checks for.
		_ = g.AddEdge(r.From, r.To, r.Km)
	}

	return g
}
